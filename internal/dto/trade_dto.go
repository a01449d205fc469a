package dto

// HSCodeResult is one classification candidate for a product.
type HSCodeResult struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// HSCodeLookupResponse lists classification candidates, best match first.
type HSCodeLookupResponse struct {
	Product string         `json:"product"`
	Results []HSCodeResult `json:"results"`
}
