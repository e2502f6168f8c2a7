package models

// Detection is a single alert-stream detection of an object.
type Detection struct {
	Candid   int64   `json:"candid" db:"candid"`
	OID      string  `json:"oid" db:"oid"`
	MJD      float64 `json:"mjd" db:"mjd"`
	FID      int     `json:"fid" db:"fid"`
	RA       float64 `json:"ra" db:"ra"`
	Dec      float64 `json:"dec" db:"dec"`
	MagPSF   float64 `json:"magpsf" db:"magpsf"`
	SigmaPSF float64 `json:"sigmapsf" db:"sigmapsf"`
	RB       float64 `json:"rb" db:"rb"`
}

// NonDetection records an epoch where the survey observed the object's
// position but found nothing above the limiting magnitude.
type NonDetection struct {
	OID        string  `json:"oid" db:"oid"`
	MJD        float64 `json:"mjd" db:"mjd"`
	FID        int     `json:"fid" db:"fid"`
	DiffMagLim float64 `json:"diffmaglim" db:"diffmaglim"`
}

// Lightcurve bundles an object's detections and non-detections.
type Lightcurve struct {
	Detections    []Detection    `json:"detections"`
	NonDetections []NonDetection `json:"non_detections"`
}
