package contract

type AgentType string

const (
	AgentTypeTriage        AgentType = "triage"
	AgentTypeAIDevelopment AgentType = "ai_development"
	AgentTypeAutomation    AgentType = "automation"
	AgentTypeFullstack     AgentType = "fullstack"
	AgentTypeCybersecurity AgentType = "cybersecurity"
	AgentTypeEscalation    AgentType = "escalation"
)

type SpecialistRequest struct {
	UserMessage     string       `json:"user_message"`
	CustomerContext string       `json:"customer_context"`
	ToolResults     []ToolResult `json:"tool_results,omitempty"`
}

type SpecialistResponse struct {
	Message        string        `json:"message"`
	ToolRequests   []ToolRequest `json:"tool_requests,omitempty"`
	FollowUpNeeded bool          `json:"follow_up_needed,omitempty"`
	Escalate       bool          `json:"escalate,omitempty"`
}

type ToolRequest struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
}

type ToolResult struct {
	Tool   string `json:"tool"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// SecurityAssessment is the structured verdict of the security screen on inbound text.
type SecurityAssessment struct {
	IsMalicious     bool   `json:"is_malicious"`
	ContainsPII     bool   `json:"contains_pii"`
	IsInappropriate bool   `json:"is_inappropriate"`
	ThreatLevel     string `json:"threat_level"` // low, medium, high
	Reasoning       string `json:"reasoning"`
}

// ContentAssessment is the structured verdict of the quality screen on outbound text.
type ContentAssessment struct {
	IsOffTopic            bool   `json:"is_off_topic"`
	IsProfessional        bool   `json:"is_professional"`
	ContainsSensitiveInfo bool   `json:"contains_sensitive_info"`
	QualityScore          int    `json:"quality_score"` // 1-10
	Reasoning             string `json:"reasoning"`
}

// BusinessAssessment judges whether an inquiry belongs in customer support at all.
type BusinessAssessment struct {
	IsBusinessRelated    bool   `json:"is_business_related"`
	IsSupportAppropriate bool   `json:"is_support_appropriate"`
	ShouldEscalate       bool   `json:"should_escalate"`
	RelevanceScore       int    `json:"relevance_score"` // 1-10
	Reasoning            string `json:"reasoning"`
}
