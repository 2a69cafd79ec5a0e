package model

// PersonalInfo is the hero-section record: who the site belongs to and how
// to reach them.
type PersonalInfo struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	LinkedIn     string `json:"linkedin"`
	GitHub       string `json:"github"`
	Location     string `json:"location"`
	ProfileImage string `json:"profileImage"`
}

// AboutInfo is the about-section summary plus highlight bullets.
type AboutInfo struct {
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
}

// Project describes a single portfolio project. ID is unique among projects
// and is the key for single-project lookups.
type Project struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle,omitempty"`
	Duration     string   `json:"duration"`
	Description  string   `json:"description"`
	Challenge    string   `json:"challenge"`
	Approach     string   `json:"approach"`
	Results      []string `json:"results"`
	Technologies []string `json:"technologies"`
	Skills       []string `json:"skills"`
	Category     string   `json:"category"`
}

// Skill is a single named skill with a 0-100 proficiency level.
type Skill struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

// SkillsData groups skills the way the frontend renders them.
type SkillsData struct {
	DataScience []Skill `json:"dataScience"`
	Frameworks  []Skill `json:"frameworks"`
	WebDev      []Skill `json:"webDev"`
	Specialized []Skill `json:"specialized"`
}

// Education is one degree entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	Duration    string `json:"duration"`
	Details     string `json:"details"`
	Status      string `json:"status"`
}

// Certification is one professional certification entry.
type Certification struct {
	Title    string `json:"title"`
	Issuer   string `json:"issuer"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Details  string `json:"details,omitempty"`
}

// Experience is one work-experience entry.
type Experience struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
}

// Language is a spoken-language proficiency entry.
type Language struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}
