package records

// Element is a row of the elements table. Fields and Attributes hold the
// serialized JSON objects the CMS stores for the record.
type Element struct {
	ID         int64  `gorm:"column:id;primaryKey"`
	Fields     string `gorm:"column:fields"`
	Attributes string `gorm:"column:attributes"`
}

func (Element) TableName() string { return "elements" }

// ElementGroup links an element to one of its groups.
type ElementGroup struct {
	ElementID int64 `gorm:"column:element_id"`
	GroupID   int64 `gorm:"column:group_id"`
}

func (ElementGroup) TableName() string { return "element_groups" }

// requiredColumns lists the columns read by the store, per table.
var requiredColumns = []struct {
	table   string
	columns []string
}{
	{table: "elements", columns: []string{"id", "fields", "attributes"}},
	{table: "element_groups", columns: []string{"element_id", "group_id"}},
}
