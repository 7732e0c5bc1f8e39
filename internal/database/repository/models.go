package repository

// Container is a named workspace scoping all transactions. Exactly one
// container is the protected default.
type Container struct {
	ID        string
	Name      string
	CreatedAt string
	IsDefault bool
}

// Category is a process-wide label. Default categories are seeded once
// and cannot be deleted.
type Category struct {
	ID        int64
	Name      string
	IsDefault bool
}

// Transaction is a ledger row. Amount is cents; the sign encodes
// direction (negative = expense). Category is a soft reference to
// Category.Name, not enforced by a constraint. Date is always the
// canonical "2006-01-02 15:04:05" form.
type Transaction struct {
	ID          string
	Amount      int64
	Description string
	Category    string
	Date        string
	ContainerID string
}

// NewTransaction carries the caller-supplied fields of a manual entry.
// Nil Description/Category fall back to "Untitled"/"Other".
type NewTransaction struct {
	ContainerID string
	Amount      int64
	Description *string
	Category    *string
}

// CategoryTotal is one row of an expense-by-category aggregation.
type CategoryTotal struct {
	Category string
	Total    int64
}
