// Package content holds the fixed public catalogues the marketing site
// renders. Everything here is static by design; the arrays never change
// between requests, which the frontend relies on for caching.
package content

import "github.com/samber/lo"

type Leader struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Image    string `json:"image"`
	Bio      string `json:"bio"`
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin,omitempty"`
}

type GalleryItem struct {
	ID          int    `json:"id"`
	Image       string `json:"image"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type Service struct {
	ID          int      `json:"id"`
	Icon        string   `json:"icon"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
}

type Value struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ImpactStat struct {
	Icon   string `json:"icon"`
	Number string `json:"number"`
	Label  string `json:"label"`
}

type About struct {
	Mission     string       `json:"mission"`
	Vision      string       `json:"vision"`
	Values      []Value      `json:"values"`
	ImpactStats []ImpactStat `json:"impactStats"`
}

type PaymentMethod struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Currencies []string `json:"currencies"`
	Providers  []string `json:"providers"`
}

var Leaders = []Leader{
	{
		ID:       1,
		Name:     "Anuary Ghusub",
		Title:    "Chief Director",
		Image:    "https://api.example.com/images/leader-1.jpg",
		Bio:      "Anuary Ghusub brings over 06 years of experience in community development and charitable work across Tanzania.",
		Email:    "anuary@chartyevents.org",
		LinkedIn: "https://linkedin.com/in/anuary-ghusub",
	},
	{
		ID:    2,
		Name:  "Amina Juma",
		Title: "Programs Coordinator",
		Image: "https://api.example.com/images/leader-2.jpg",
		Bio:   "Amina coordinates the school equipment programs and works directly with partner schools in Dar es Salaam.",
		Email: "amina@chartyevents.org",
	},
	{
		ID:    3,
		Name:  "Joseph Mwakyusa",
		Title: "Community Outreach Lead",
		Image: "https://api.example.com/images/leader-3.jpg",
		Bio:   "Joseph leads volunteer recruitment and the community development initiatives in the coastal region.",
		Email: "joseph@chartyevents.org",
	},
}

var Gallery = []GalleryItem{
	{
		ID:          1,
		Image:       "https://api.example.com/images/gallery-1.jpg",
		Title:       "School Equipment Distribution",
		Category:    "Education",
		Date:        "December 2024",
		Location:    "Dar es Salaam",
		Description: "Distributing essential school supplies to primary school students.",
	},
	{
		ID:          2,
		Image:       "https://api.example.com/images/gallery-2.jpg",
		Title:       "Community Clean-Up Day",
		Category:    "Community",
		Date:        "February 2025",
		Location:    "Kigamboni",
		Description: "Volunteers and residents working together on neighborhood improvement.",
	},
	{
		ID:          3,
		Image:       "https://api.example.com/images/gallery-3.jpg",
		Title:       "Back to School Drive",
		Category:    "Education",
		Date:        "June 2025",
		Location:    "Temeke",
		Description: "Uniforms and learning materials handed out ahead of the new term.",
	},
	{
		ID:          4,
		Image:       "https://api.example.com/images/gallery-4.jpg",
		Title:       "Volunteer Training Workshop",
		Category:    "Volunteers",
		Date:        "July 2025",
		Location:    "Dar es Salaam",
		Description: "Onboarding session for the newest group of community volunteers.",
	},
}

var Services = []Service{
	{
		ID:          1,
		Icon:        "GraduationCap",
		Title:       "School Equipment Support",
		Description: "Providing essential educational materials to students in underserved communities.",
		Image:       "https://api.example.com/images/service-1.jpg",
		Features:    []string{"School Supplies", "Books & Materials", "Uniforms", "Learning Equipment"},
	},
	{
		ID:          2,
		Icon:        "Users",
		Title:       "Community Development",
		Description: "Working with local leaders on projects that strengthen neighborhoods.",
		Image:       "https://api.example.com/images/service-2.jpg",
		Features:    []string{"Local Partnerships", "Clean-Up Programs", "Skills Workshops"},
	},
	{
		ID:          3,
		Icon:        "Heart",
		Title:       "Volunteer Programs",
		Description: "Connecting volunteers with opportunities to serve their communities.",
		Image:       "https://api.example.com/images/service-3.jpg",
		Features:    []string{"Volunteer Training", "Event Support", "Mentorship"},
	},
}

var impactStats = []ImpactStat{
	{Icon: "Heart", Number: "1,500+", Label: "Children Supported"},
	{Icon: "Shield", Number: "98%", Label: "Funds to Programs"},
	{Icon: "Users", Number: "300+", Label: "Volunteers"},
}

var AboutContent = About{
	Mission: "To empower communities and transform lives through compassionate service, education support, and sustainable development programs.",
	Vision:  "A world where every child has access to quality education and every community has the resources to thrive.",
	Values: []Value{
		{Icon: "Users", Title: "Community Focused", Description: "We work directly with local communities to understand their needs."},
		{Icon: "Heart", Title: "Compassion", Description: "We serve with empathy and care."},
		{Icon: "Shield", Title: "Integrity", Description: "We are transparent and accountable."},
	},
	ImpactStats: impactStats,
}

// ImpactStats returns a copy so callers cannot mutate the shared catalogue.
func ImpactStats() []ImpactStat {
	return lo.Map(impactStats, func(s ImpactStat, _ int) ImpactStat { return s })
}

var PaymentMethods = []PaymentMethod{
	{
		ID:         "mobile_money_tanzania",
		Name:       "Mobile Money (Tanzania)",
		Currencies: []string{"TZS"},
		Providers:  []string{"M-Pesa", "Tigo Pesa", "Airtel Money", "Halopesa"},
	},
	{
		ID:         "card",
		Name:       "Credit / Debit Card",
		Currencies: []string{"USD", "TZS"},
		Providers:  []string{"Visa", "Mastercard"},
	},
	{
		ID:         "bank_transfer",
		Name:       "Bank Transfer",
		Currencies: []string{"TZS"},
		Providers:  []string{"CRDB", "NMB", "NBC"},
	},
}
