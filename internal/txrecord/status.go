package txrecord

// StatusKind is the confirmation state of a transaction.
type StatusKind string

const (
	StatusPending    StatusKind = "pending"
	StatusProcessing StatusKind = "processing"
	StatusCompleted  StatusKind = "completed"
	StatusFailed     StatusKind = "failed"
)

// Status is a confirmation state. Progress is only meaningful while
// Processing and lies in (0, 1).
type Status struct {
	Kind     StatusKind `json:"kind"`
	Progress float64    `json:"progress,omitempty"`
}

var (
	Pending   = Status{Kind: StatusPending}
	Completed = Status{Kind: StatusCompleted}
	Failed    = Status{Kind: StatusFailed}
)

// Processing returns a processing status with the given progress.
func Processing(progress float64) Status {
	return Status{Kind: StatusProcessing, Progress: progress}
}

const defaultConfirmationsThreshold = 1

// StatusOf derives the confirmation status of r given the newest known block
// height.
func StatusOf(r Record, lastBlockHeight *int64) Status {
	b := r.Common()
	if b.Failed {
		return Failed
	}

	// Ton records are only reported once they are final.
	if _, ok := r.(*TonRecord); ok {
		return Completed
	}

	if b.BlockHeight == nil || lastBlockHeight == nil {
		return Pending
	}

	threshold := int64(defaultConfirmationsThreshold)
	if b.ConfirmationsThreshold != nil && *b.ConfirmationsThreshold > 0 {
		threshold = *b.ConfirmationsThreshold
	}

	confirmations := *lastBlockHeight - *b.BlockHeight + 1
	if confirmations >= threshold {
		return Completed
	}

	if confirmations < 0 {
		confirmations = 0
	}
	return Processing(float64(confirmations) / float64(threshold))
}

// ChangedBy reports whether moving from prev to next block info changes
// anything derived from it: the status, or for time-locked outputs the lock
// state.
func ChangedBy(r Record, prev, next *LastBlockInfo) bool {
	if StatusOf(r, prev.HeightPtr()) != StatusOf(r, next.HeightPtr()) {
		return true
	}

	if btc, ok := r.(*BitcoinRecord); ok && btc.LockInfo != nil {
		return *btc.LockState(prev.TimestampPtr()) != *btc.LockState(next.TimestampPtr())
	}

	return false
}

// LockState is the lock state of a time-locked UTXO output.
type LockState struct {
	Locked bool  `json:"locked"`
	Date   int64 `json:"date"`
}

// LockState returns the lock state of the record, or nil when the output is not
// time-locked. Without a known block timestamp the output counts as locked.
func (r *BitcoinRecord) LockState(lastBlockTimestamp *int64) *LockState {
	if r.LockInfo == nil {
		return nil
	}

	locked := true
	if lastBlockTimestamp != nil {
		locked = r.LockInfo.LockedUntil > *lastBlockTimestamp
	}

	return &LockState{Locked: locked, Date: r.LockInfo.LockedUntil}
}
