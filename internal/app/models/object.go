package models

// Object represents a catalogued astronomical source: the aggregate record
// built from all detections of one source by the alert survey.
type Object struct {
	OID      string  `json:"oid" db:"oid"`
	Ndet     int     `json:"ndet" db:"ndet"`
	MeanRA   float64 `json:"meanra" db:"meanra"`
	MeanDec  float64 `json:"meandec" db:"meandec"`
	SigmaRA  float64 `json:"sigmara" db:"sigmara"`
	SigmaDec float64 `json:"sigmadec" db:"sigmadec"`
	DeltaJD  float64 `json:"deltajd" db:"deltajd"`
	FirstMJD float64 `json:"firstmjd" db:"firstmjd"`
	LastMJD  float64 `json:"lastmjd" db:"lastmjd"`
}

// ObjectListItem is one row of the list endpoint: an object's fields merged
// with the fields of its matching classification. The classification side is
// left empty when the outer join found no match.
type ObjectListItem struct {
	Object
	ClassifierName *string  `json:"classifier_name,omitempty" db:"classifier_name"`
	ClassName      *string  `json:"class_name,omitempty" db:"class_name"`
	Probability    *float64 `json:"probability,omitempty" db:"probability"`
}

// ObjectPage is one page of list results with navigation cursors. Total is
// nil when the request disabled counting.
type ObjectPage struct {
	Items   []ObjectListItem
	Total   *int64
	Page    int
	HasNext bool
	NextNum *int
	HasPrev bool
	PrevNum *int
}
