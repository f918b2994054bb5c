package errors

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// ClassifyTransportError names the kind of network failure behind err.
func ClassifyTransportError(err *TransportError) *UIError {
	if err == nil {
		return nil
	}

	details := err.Error()
	if err.Method != "" || err.URL != "" {
		details = fmt.Sprintf("%s %s\n\n%s", err.Method, err.URL, details)
	}

	var (
		dnsErr      *net.DNSError
		urlErr      *url.Error
		opErr       *net.OpError
		netErr      net.Error
		unknownAuth x509.UnknownAuthorityError
		hostErr     x509.HostnameError
		invalidCert x509.CertificateInvalidError
		verifyErr   *tls.CertificateVerificationError
	)

	switch {
	case errors.As(err, &dnsErr):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Host Not Found",
			Message:  "The host name could not be resolved.",
			Recovery: []string{"Check the host in the URL", "Check your network connection"},
			Details:  details,
		}

	case errors.As(err, &unknownAuth), errors.As(err, &hostErr),
		errors.As(err, &invalidCert), errors.As(err, &verifyErr):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Certificate Error",
			Message:  "The server's TLS certificate could not be verified.",
			Recovery: []string{"Check the URL scheme and host", "Verify the server certificate"},
			Details:  details,
		}

	case errors.As(err, &netErr) && netErr.Timeout():
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Request Timeout",
			Message:  "The server took too long to respond.",
			Recovery: []string{"Send the request again"},
			Details:  details,
		}

	case errors.As(err, &opErr) && opErr.Op == "dial":
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Connection Failed",
			Message:  "Unable to connect to the server.",
			Recovery: []string{
				"Check that the server is running",
				"Verify the host and port",
				"Check your network connection",
			},
			Details: details,
		}

	case errors.As(err, &urlErr) && urlErr.Op == "parse":
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Invalid URL",
			Message:  "The URL could not be parsed.",
			Recovery: []string{"Check the URL, including its scheme"},
			Details:  details,
		}
	}

	return &UIError{
		Err:      err,
		Severity: SeverityError,
		Title:    "Request Failed",
		Message:  "The request could not be completed.",
		Recovery: []string{"Check the URL", "Check your network connection"},
		Details:  details,
	}
}
