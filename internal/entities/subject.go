package entities

// Track identifies which student population takes a subject.
type Track string

const (
	TrackCommon   Track = "COMMON"
	TrackScience  Track = "SCIENCE"
	TrackLiterary Track = "LITERARY"
)

// Subject is the singleton a contributor authors content for. At most one
// subject is active per store instance. The wire contract calls the track
// field "path", which the JSON tag preserves.
type Subject struct {
	ID       string  `json:"id"`
	NameAr   string  `json:"nameAr"`
	NameEn   *string `json:"nameEn"`
	Track    Track   `json:"path"`
	IsMajor  bool    `json:"isMajor"`
	ColorHex *string `json:"colorHex"`
	Order    int     `json:"order"`
}
