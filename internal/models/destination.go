package models

// DestinationInfo is what the country lookup returns: the first currency
// code and the flag glyph of the first matching country.
type DestinationInfo struct {
	Currency string `json:"currency"`
	Flag     string `json:"flag"`
}
