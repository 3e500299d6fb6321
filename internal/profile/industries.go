package profile

// Industry is a selectable industry with its specializations.
type Industry struct {
	ID            string
	Name          string
	SubIndustries []string
}

// Industries lists the industries offered during onboarding.
var Industries = []Industry{
	{
		ID:   "tech",
		Name: "Technology",
		SubIndustries: []string{
			"Software Development",
			"Data Science",
			"Cybersecurity",
			"Cloud Computing",
			"DevOps",
			"Artificial Intelligence",
		},
	},
	{
		ID:   "finance",
		Name: "Finance",
		SubIndustries: []string{
			"Banking",
			"Investment Management",
			"Insurance",
			"Fintech",
			"Accounting",
		},
	},
	{
		ID:   "healthcare",
		Name: "Healthcare",
		SubIndustries: []string{
			"Nursing",
			"Pharmacy",
			"Health Administration",
			"Medical Devices",
			"Telemedicine",
		},
	},
	{
		ID:   "marketing",
		Name: "Marketing",
		SubIndustries: []string{
			"Digital Marketing",
			"Content Marketing",
			"Brand Management",
			"Market Research",
		},
	},
	{
		ID:   "education",
		Name: "Education",
		SubIndustries: []string{
			"Teaching",
			"EdTech",
			"Curriculum Design",
			"Corporate Training",
		},
	},
	{
		ID:   "manufacturing",
		Name: "Manufacturing",
		SubIndustries: []string{
			"Automotive",
			"Electronics",
			"Industrial Engineering",
			"Supply Chain",
		},
	},
}

// FindIndustry returns the industry with the given ID, or nil.
func FindIndustry(id string) *Industry {
	for i := range Industries {
		if Industries[i].ID == id {
			return &Industries[i]
		}
	}
	return nil
}
