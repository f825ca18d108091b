package dataset

// PhotoRecord is one annotated photo in an evaluation dataset. The
// reference fields are the ground truth the pipeline output is compared
// against.
type PhotoRecord struct {
	// Core identifiers
	ID        string `json:"id" parquet:"id"`
	ImagePath string `json:"image_path" parquet:"image_path"`

	// Optional prompt hints
	LocationHint string `json:"location_hint" parquet:"location_hint"`
	FaceHint     string `json:"face_hint" parquet:"face_hint"`

	// Ground truth annotations
	Category string   `json:"category" parquet:"category"`
	Objects  []string `json:"objects" parquet:"objects,list"`
	Faces    int      `json:"faces" parquet:"faces"`

	// Reference transcript: a human-written description of the photo,
	// used by offline runs that skip the model call.
	Transcript string `json:"transcript" parquet:"transcript"`
}

// HasAnnotations reports whether the record carries any ground truth to
// compare against.
func (r *PhotoRecord) HasAnnotations() bool {
	return r.Category != "" || len(r.Objects) > 0 || r.Faces > 0
}
