package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Hex is a 0x-prefixed quantity, the way JSON-RPC nodes encode block
// numbers and timestamps.
type Hex string

func HexFromInt(n int64) Hex {
	return Hex(fmt.Sprintf("0x%x", n))
}

func parseHex(s string) (int64, error) {
	digits, ok := strings.CutPrefix(strings.ToLower(s), "0x")
	if !ok {
		return 0, fmt.Errorf("hex quantity %q must start with 0x", s)
	}

	v, err := strconv.ParseInt(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hex quantity %q: %w", s, err)
	}
	return v, nil
}

func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// UnmarshalJSON accepts only strings holding a valid quantity.
func (h *Hex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("hex quantity must be a string: %w", err)
	}

	if _, err := parseHex(s); err != nil {
		return err
	}

	*h = Hex(s)
	return nil
}

// Int decodes h, returning zero when it is not a valid quantity.
func (h Hex) Int() int64 {
	v, _ := parseHex(string(h))
	return v
}

// IntPtr decodes h, returning nil when it is empty. Nodes leave the
// timestamp of pending blocks empty.
func (h Hex) IntPtr() *int64 {
	if h == "" {
		return nil
	}

	v := h.Int()
	return &v
}
