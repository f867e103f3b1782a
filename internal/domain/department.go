package domain

// Department is a flat organizational record. The ID is assigned by the
// storage layer on first persistence and never changes afterwards.
type Department struct {
	ID      int64
	Name    string
	Address string
}
