package ports

import "dbcheck/internal/core/domain"

//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks

// Reporter renders the progress of a diagnostic run for a human operator.
type Reporter interface {
	Start()
	URIFound(masked string)
	Connecting(backend domain.Backend)
	Connected(info domain.ConnectionInfo)
	Pinging()
	Pinged(result domain.PingResult)
	Databases(shown []domain.DatabaseInfo, remaining int, total int64)
	Disconnected()
	Succeeded(report *domain.ConnectionReport)

	// ConfigurationFailed prints the remediation guide for a missing URI.
	ConfigurationFailed(err error)
	// ConnectionFailed prints the failure cause and the troubleshooting checklist.
	ConnectionFailed(err error)
}
