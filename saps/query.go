package saps

import (
	"fmt"
	"net/url"

	"github.com/linesmerrill/firearm-tracker-api/models"
)

// enquiryEndpoint is the externally hosted SAPS firearm enquiry results page.
const enquiryEndpoint = "https://www.saps.gov.za/services/flash/enquiry_result.php"

// BuildQuery constructs the full enquiry URL for an application. Exactly the
// two query parameters relevant to the application's search method are
// emitted; empty parameters are never sent.
func BuildQuery(details models.ApplicationDetails) (string, error) {
	params := url.Values{}
	switch details.SearchMethod {
	case models.SearchByReference:
		params.Set("fref", details.ReferenceNumber)
		params.Set("frid", details.IDNumber)
	case models.SearchBySerial:
		params.Set("fserial", details.SerialNumber)
		params.Set("fsref", details.ReferenceNumber)
	case models.SearchByID:
		params.Set("fid", details.IDNumber)
		params.Set("fiserial", details.SerialNumber)
	default:
		return "", fmt.Errorf("unsupported search method: %q", details.SearchMethod)
	}

	for key, vals := range params {
		if len(vals) == 0 || vals[0] == "" {
			return "", fmt.Errorf("search method %q requires a value for %q", details.SearchMethod, key)
		}
	}

	return enquiryEndpoint + "?" + params.Encode(), nil
}
