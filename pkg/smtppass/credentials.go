package smtppass

// SubmissionPort is the STARTTLS port SES accepts on every SMTP endpoint.
const SubmissionPort = 587

// Credentials is a complete SMTP login for one region.
type Credentials struct {
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	Password string `json:"password" yaml:"password"`
	Region   string `json:"region" yaml:"region"`
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	Port     int    `json:"port" yaml:"port"`
}

// NewCredentials derives the password for region and bundles it with the endpoint.
// accessKeyID becomes the SMTP username and may be empty when unknown.
func NewCredentials(accessKeyID, secret, region string) (Credentials, error) {
	password, err := Derive(secret, region)
	if err != nil {
		return Credentials{}, err
	}
	endpoint, err := Endpoint(region)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{
		Username: accessKeyID,
		Password: password,
		Region:   region,
		Endpoint: endpoint,
		Port:     SubmissionPort,
	}, nil
}
