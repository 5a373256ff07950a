package model

// Field names as they appear in the input JSON document.
const (
	FieldName    = "name"
	FieldRevenue = "revenue"
	FieldPublic  = "public"
)

// Default values substituted for fields absent from the input document.
const (
	DefaultName    = ""
	DefaultRevenue = 0.0
	DefaultPublic  = 0.0
)

// Project is one validated entry of the input array.
// Every field is populated once loading completes; missing input keys are
// replaced by the Default* values above. A Project has no identity beyond
// its position in the loaded sequence, so duplicate names are allowed.
type Project struct {
	// Name is the project name used for table rows and chart annotations.
	Name string `json:"name"`

	// Revenue is the estimated project revenue. It is plotted on the X axis.
	Revenue float64 `json:"revenue"`

	// Public is the estimated number of people affected by the project.
	// It is plotted on the Y axis.
	Public float64 `json:"public"`
}

// NewProject returns a Project with the default value for every field.
func NewProject() Project {
	return Project{
		Name:    DefaultName,
		Revenue: DefaultRevenue,
		Public:  DefaultPublic,
	}
}

// Fields returns the input field names in display order.
func Fields() []string {
	return []string{FieldName, FieldRevenue, FieldPublic}
}
