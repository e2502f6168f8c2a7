package models

// Classification is a label assigned to an Object by a named classifier,
// with the probability the classifier gave it. An object can carry zero or
// more classifications; they live and die with the classification pipeline.
type Classification struct {
	OID            string  `json:"oid" db:"oid"`
	ClassifierName string  `json:"classifier_name" db:"classifier_name"`
	ClassName      string  `json:"class_name" db:"class_name"`
	Probability    float64 `json:"probability" db:"probability"`
}
