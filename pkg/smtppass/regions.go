package smtppass

import (
	"fmt"
	"slices"
)

// regions lists every region with an SES SMTP endpoint, in canonical order.
// The list must match the service exactly; do not reorder or extend it casually.
var regions = []string{
	"us-east-2",
	"us-east-1",
	"us-west-2",
	"ap-south-1",
	"ap-northeast-2",
	"ap-southeast-1",
	"ap-southeast-2",
	"ap-northeast-1",
	"ca-central-1",
	"eu-central-1",
	"eu-west-1",
	"eu-west-2",
	"eu-south-1",
	"eu-north-1",
	"sa-east-1",
	"us-gov-west-1",
	"us-gov-east-1",
}

// Regions returns a copy of the supported regions in canonical order.
func Regions() []string {
	return slices.Clone(regions)
}

// IsValidRegion reports whether region has an SMTP endpoint.
// Matching is exact and case-sensitive.
func IsValidRegion(region string) bool {
	return slices.Contains(regions, region)
}

// ValidateRegion returns an *InvalidRegionError when region is not supported.
func ValidateRegion(region string) error {
	if !IsValidRegion(region) {
		return &InvalidRegionError{Region: region}
	}
	return nil
}

// Endpoint returns the SMTP host name for region.
func Endpoint(region string) (string, error) {
	if err := ValidateRegion(region); err != nil {
		return "", err
	}
	return fmt.Sprintf("email-smtp.%s.amazonaws.com", region), nil
}
