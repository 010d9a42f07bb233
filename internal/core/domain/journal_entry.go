package domain

// JournalEntry is a multi-line double-entry posting. Line order is
// significant: it determines the debit/credit presentation order.
type JournalEntry struct {
	ID          string `json:"Id,omitempty"`
	TxnDate     *Date  `json:"TxnDate,omitempty"`
	PrivateNote string `json:"PrivateNote,omitempty"`
	Line        []Line `json:"Line"`
	SyncToken   string `json:"SyncToken,omitempty"`
}

func (j JournalEntry) EntityType() string  { return "JournalEntry" }
func (j JournalEntry) EntityID() string    { return j.ID }
func (j JournalEntry) EntityLabel() string { return "" }
