package fetcher

// Status classifies the outcome of one provider fetch.
type Status string

const (
	// StatusSuccess means the full structured payload was recovered.
	StatusSuccess Status = "success"
	// StatusPartialSuccess means the data block was found but one or more
	// expected fields were absent; missing fields carry the NotLocated
	// sentinel.
	StatusPartialSuccess Status = "partial_success"
	// StatusNotFound means the provider confirmed the CNPJ does not exist
	// (HTTP 404).
	StatusNotFound Status = "not_found"
	// StatusHTTPError means the provider responded with a non-success,
	// non-404 status.
	StatusHTTPError Status = "http_error"
	// StatusConnectionError means a transport-level failure (timeout, DNS,
	// connection refusal, TLS).
	StatusConnectionError Status = "connection_error"
	// StatusExtractionFailure means the response arrived but the expected
	// structured data block was missing, malformed, or repositioned.
	StatusExtractionFailure Status = "extraction_failure"
	// StatusDataProtected means the provider is reachable but its figures
	// sit behind client-side rendering and protected internal calls.
	StatusDataProtected Status = "data_protected"
	// StatusSystemAvailable means the provider's legacy query system is up
	// but blocks direct value scraping.
	StatusSystemAvailable Status = "system_available"
)

// NotLocated is the sentinel recorded for a payload field the extractor
// could not recover. Payload fields are always populated, never omitted.
const NotLocated = "not located"

// FundData is the structured payload recovered from a provider page.
type FundData struct {
	Name          string `json:"fund_name"`
	NetAssetValue string `json:"net_asset_value"`
	SharePrice    string `json:"share_price"`
	ReferenceDate string `json:"reference_date"`
}

// NewFundData returns a payload with every field set to the NotLocated
// sentinel, ready for the extractor to fill in what it finds.
func NewFundData() *FundData {
	return &FundData{
		Name:          NotLocated,
		NetAssetValue: NotLocated,
		SharePrice:    NotLocated,
		ReferenceDate: NotLocated,
	}
}

// Complete reports whether every payload field was recovered.
func (d *FundData) Complete() bool {
	return d.Name != NotLocated &&
		d.NetAssetValue != NotLocated &&
		d.SharePrice != NotLocated &&
		d.ReferenceDate != NotLocated
}

// Result is the immutable, classified outcome of one provider fetch.
// Source and Status are always set. Payload is present only for
// StatusSuccess and StatusPartialSuccess; Note explains the informational
// statuses; Detail explains the failure statuses.
type Result struct {
	Source     string    `json:"source"`
	Status     Status    `json:"status"`
	URL        string    `json:"url,omitempty"`
	HTTPStatus int       `json:"http_status,omitempty"`
	Payload    *FundData `json:"payload,omitempty"`
	Note       string    `json:"note,omitempty"`
	Detail     string    `json:"detail,omitempty"`
}

// OK reports whether the result carries a payload (full or partial).
func (r Result) OK() bool {
	return r.Status == StatusSuccess || r.Status == StatusPartialSuccess
}
