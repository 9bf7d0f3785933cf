package entity

type Menu struct {
	ID    int64
	Title string
}

type MenuItem struct {
	ID          int64
	Name        string
	Description *string // nil when the row stores NULL
	Inventory   int64
	Price       float64
	MenuID      int64
}
