package domain

// ServiceType kind of studio service being booked
type ServiceType string

const (
	ServiceHourly ServiceType = "hourly"
	ServiceMix    ServiceType = "mix"
	ServiceMaster ServiceType = "master"
)

// IsValid reports whether t is a known service type
func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceHourly, ServiceMix, ServiceMaster:
		return true
	}
	return false
}

// IsTitleBased reports whether the service is billed per title
func (t ServiceType) IsTitleBased() bool {
	return t == ServiceMix || t == ServiceMaster
}

// Label French display name
func (t ServiceType) Label() string {
	switch t {
	case ServiceHourly:
		return "Réservation Horaire"
	case ServiceMix:
		return "Mixage de Titre"
	case ServiceMaster:
		return "Mastering"
	}
	return string(t)
}
