package entity

// Customer representa un cliente. El par (Name, Phone) es único.
type Customer struct {
	ID    int64
	Name  string
	Phone string
}
