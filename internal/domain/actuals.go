package domain

// WeeklyActuals is the recorded performance for one week. Entries are created
// on first edit; an absent week means zero for every field. Spends are raw
// agency invoiced amounts, stored net of tax.
type WeeklyActuals struct {
	WeekID int
	Leads  float64
	AP     float64
	AD     float64
	Spends float64

	Bookings         float64 // digital
	PresalesBookings float64
	BrandBookings    float64
	ReferralBookings float64
	CPBookings       float64
}

// ActualField names one editable field of a WeeklyActuals entry.
type ActualField string

const (
	ActualLeads            ActualField = "leads"
	ActualAP               ActualField = "ap"
	ActualAD               ActualField = "ad"
	ActualSpends           ActualField = "spends"
	ActualBookings         ActualField = "bookings"
	ActualPresalesBookings ActualField = "presales_bookings"
	ActualBrandBookings    ActualField = "brand_bookings"
	ActualReferralBookings ActualField = "referral_bookings"
	ActualCPBookings       ActualField = "cp_bookings"
)

// ValidActualFields is the canonical set of accepted actual field names.
var ValidActualFields = map[string]bool{
	"leads": true, "ap": true, "ad": true, "spends": true,
	"bookings": true, "presales_bookings": true, "brand_bookings": true,
	"referral_bookings": true, "cp_bookings": true,
}

// Get returns the value of the named field.
func (a *WeeklyActuals) Get(f ActualField) float64 {
	switch f {
	case ActualLeads:
		return a.Leads
	case ActualAP:
		return a.AP
	case ActualAD:
		return a.AD
	case ActualSpends:
		return a.Spends
	case ActualBookings:
		return a.Bookings
	case ActualPresalesBookings:
		return a.PresalesBookings
	case ActualBrandBookings:
		return a.BrandBookings
	case ActualReferralBookings:
		return a.ReferralBookings
	case ActualCPBookings:
		return a.CPBookings
	}
	return 0
}

// Set assigns the named field.
func (a *WeeklyActuals) Set(f ActualField, v float64) {
	switch f {
	case ActualLeads:
		a.Leads = v
	case ActualAP:
		a.AP = v
	case ActualAD:
		a.AD = v
	case ActualSpends:
		a.Spends = v
	case ActualBookings:
		a.Bookings = v
	case ActualPresalesBookings:
		a.PresalesBookings = v
	case ActualBrandBookings:
		a.BrandBookings = v
	case ActualReferralBookings:
		a.ReferralBookings = v
	case ActualCPBookings:
		a.CPBookings = v
	}
}

// BookingField maps a vertical to the actuals field recording its bookings.
func BookingField(v Vertical) ActualField {
	switch v {
	case VerticalDigital:
		return ActualBookings
	case VerticalPresales:
		return ActualPresalesBookings
	case VerticalBrand:
		return ActualBrandBookings
	case VerticalReferral:
		return ActualReferralBookings
	case VerticalCP:
		return ActualCPBookings
	}
	return ""
}
