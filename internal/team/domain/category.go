package domain

// PayoutCategory is the mutually exclusive bucket a team member falls into
// for payout computation. Talent lines use CategoryModel but are not team
// members.
type PayoutCategory string

const (
	CategoryChatter   PayoutCategory = "chatter"
	CategoryManager   PayoutCategory = "manager"
	CategoryVA        PayoutCategory = "va"
	CategoryModel     PayoutCategory = "model"
	CategoryAffiliate PayoutCategory = "affiliate"
	CategoryNone      PayoutCategory = "none"
)

// Classify maps role and department onto exactly one payout category. The
// switch is the single place this mapping lives; categories are derived,
// never stored.
func Classify(role Role, department Department) PayoutCategory {
	switch role {
	case RoleChatter:
		return CategoryChatter
	case RoleChattingManager:
		return CategoryManager
	case RoleVA, RoleVAManager:
		return CategoryVA
	case RoleAffiliator:
		return CategoryAffiliate
	case RoleOther:
		if department == DepartmentAffiliate {
			return CategoryAffiliate
		}
		return CategoryNone
	default:
		return CategoryNone
	}
}
