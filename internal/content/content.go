// Package content holds the static portfolio shown by the page and the
// HTTP server.
package content

// Stat is a headline number in the hero section.
type Stat struct {
	Value string `mapstructure:"value" json:"value"`
	Label string `mapstructure:"label" json:"label"`
}

// Project is a case-study card.
type Project struct {
	Title   string   `mapstructure:"title" json:"title"`
	Summary string   `mapstructure:"summary" json:"summary"`
	Tags    []string `mapstructure:"tags" json:"tags"`
	Link    string   `mapstructure:"link" json:"link"`
}

// HasTag reports whether the project carries tag. An empty tag matches.
func (p Project) HasTag(tag string) bool {
	if tag == "" {
		return true
	}
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Milestone is a timeline entry.
type Milestone struct {
	Period string `mapstructure:"period" json:"period"`
	Title  string `mapstructure:"title" json:"title"`
	Org    string `mapstructure:"org" json:"org"`
	Detail string `mapstructure:"detail" json:"detail"`
}

type Cert struct {
	Name string `mapstructure:"name" json:"name"`
	Org  string `mapstructure:"org" json:"org"`
}

type Contact struct {
	Label  string `mapstructure:"label" json:"label"`
	Detail string `mapstructure:"detail" json:"detail"`
	Href   string `mapstructure:"href" json:"href"`
}

// Portfolio is everything the page renders.
type Portfolio struct {
	Name       string      `mapstructure:"name" json:"name"`
	Brand      string      `mapstructure:"brand" json:"brand"`
	Role       string      `mapstructure:"role" json:"role"`
	Headline   string      `mapstructure:"headline" json:"headline"`
	Tagline    string      `mapstructure:"tagline" json:"tagline"`
	Email      string      `mapstructure:"email" json:"email"`
	Stats      []Stat      `mapstructure:"stats" json:"stats"`
	About      string      `mapstructure:"about" json:"about"`
	Highlights []string    `mapstructure:"highlights" json:"highlights"`
	Projects   []Project   `mapstructure:"projects" json:"projects"`
	Skills     []string    `mapstructure:"skills" json:"skills"`
	Timeline   []Milestone `mapstructure:"timeline" json:"timeline"`
	Certs      []Cert      `mapstructure:"certs" json:"certs"`
	Contacts   []Contact   `mapstructure:"contacts" json:"contacts"`
	Console    []string    `mapstructure:"console" json:"console"`
	Footer     string      `mapstructure:"footer" json:"footer"`
}

// Tags returns every project tag once, in first-seen order.
func (p Portfolio) Tags() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, pr := range p.Projects {
		for _, t := range pr.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}

// Default is the built-in portfolio.
func Default() Portfolio {
	return Portfolio{
		Name:     "Your Name",
		Brand:    "Cyber Portfolio",
		Role:     "Cybersecurity Engineer",
		Headline: "Secure by Design. Proven in the Field.",
		Tagline: "I help teams find and fix what matters, combining offensive testing with " +
			"blue team detection engineering. Explore selected engagements, write-ups, and certifications.",
		Email: "you@email.com",
		Stats: []Stat{
			{Value: "50+", Label: "Vulns Remediated"},
			{Value: "15", Label: "Assessments"},
			{Value: "4", Label: "Certifications"},
		},
		About: "Over the past years I've worked across offensive and defensive security: from web and " +
			"network pentesting to cloud hardening, threat hunting, and building practical detections. " +
			"I focus on high-signal findings and clear remediation guidance.",
		Highlights: []string{
			"Risk-driven reporting with reproducible steps",
			"Cloud-first mindset and automation",
			"Collaboration with engineering and product",
		},
		Projects: []Project{
			{
				Title: "Banking Web App Penetration Test",
				Summary: "Led a full black-box assessment of a fintech app. Identified auth bypass via JWT " +
					"misconfiguration and chained it with IDOR for account takeover. Delivered fixes and verified remediation.",
				Tags: []string{"Web", "Auth", "IDOR", "JWT", "Reporting"},
				Link: "https://example.com/case-study/fintech-pt",
			},
			{
				Title: "Cloud Security Hardening (AWS)",
				Summary: "Audited 40+ resources with IAM least-privilege, S3 bucket policies, and GuardDuty/Config " +
					"baselines. Reduced public exposures by 100% and improved CIS score to 93%.",
				Tags: []string{"Cloud", "AWS", "IAM", "CIS"},
				Link: "https://example.com/case-study/aws-hardening",
			},
			{
				Title: "CTF & Research: Modern Phishing Kits",
				Summary: "Reverse engineered kit behavior and built detections for MFA fatigue and token replay. " +
					"Published write-up and IoCs; leveraged in blue team playbooks.",
				Tags: []string{"Detection", "DFIR", "Research", "CTF"},
				Link: "https://example.com/writeups/phishing-kits",
			},
		},
		Skills: []string{
			"Network Pentesting",
			"Web Exploitation",
			"Cloud Security (AWS/Azure)",
			"Threat Hunting",
			"SIEM & Detections",
			"Secure Architecture",
			"Vulnerability Management",
			"Incident Response",
		},
		Timeline: []Milestone{
			{Period: "2024 - now", Title: "Senior Security Engineer", Org: "Fintech Co.", Detail: "Offensive testing and detection engineering"},
			{Period: "2021 - 2024", Title: "Penetration Tester", Org: "Consultancy", Detail: "Web, network and cloud assessments"},
			{Period: "2019 - 2021", Title: "SOC Analyst", Org: "MSSP", Detail: "Triage, threat hunting, SIEM content"},
		},
		Certs: []Cert{
			{Name: "OSCP", Org: "OffSec"},
			{Name: "eJPT", Org: "INE"},
			{Name: "Security+", Org: "CompTIA"},
			{Name: "AWS SAA", Org: "Amazon"},
		},
		Contacts: []Contact{
			{Label: "Email", Detail: "Reach me directly for engagements and questions.", Href: "mailto:you@email.com"},
			{Label: "GitHub", Detail: "Code samples, tooling, and write-ups.", Href: "https://github.com/"},
			{Label: "LinkedIn", Detail: "Background, recommendations, and updates.", Href: "https://linkedin.com/"},
		},
		Console: []string{
			"$ whoami",
			"security engineer // red + blue",
			"$ nmap -sV --top-ports 100 target",
			"$ cat findings.md | grep -c CRITICAL",
			"0  # fixed and verified",
		},
		Footer: "Built with care • Security-first • Dark mode",
	}
}
