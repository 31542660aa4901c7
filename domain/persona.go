package domain

import "time"

// Persona identifiers. The set is fixed: five personas, unique priorities,
// loaded once as static configuration.
const (
	PersonaHighUtilization   = "high_utilization"
	PersonaVariableIncome    = "variable_income_budgeter"
	PersonaSubscriptionHeavy = "subscription_heavy"
	PersonaSavingsBuilder    = "savings_builder"
	PersonaNewUser           = "new_user"
)

// Persona is the serializable description of a behavioral archetype. The
// predicate and rationale builder live in the service layer; this struct is
// what crosses the wire.
type Persona struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Priority            int      `json:"priority"` // 1–5, unique
	Description         string   `json:"description"`
	RecommendationTypes []string `json:"recommendation_types"`
}

// MatchResult records one persona whose predicate held for a user.
type MatchResult struct {
	Persona   Persona `json:"persona"`
	Rationale string  `json:"rationale"`
}

// DecisionTrace is the audit record of one persona assignment: every match,
// not just the winner. Immutable once returned.
type DecisionTrace struct {
	TraceID         string        `json:"trace_id"`
	UserID          string        `json:"user_id"`
	Timestamp       time.Time     `json:"timestamp"`
	AllMatches      []MatchResult `json:"all_matches"`
	SelectedPersona string        `json:"selected_persona"`
	SelectionReason string        `json:"selection_reason"`
}

// PersonaAssignment is the output of AssignPersonaToUser.
type PersonaAssignment struct {
	UserID            string            `json:"user_id"`
	AssignedPersona   Persona           `json:"assigned_persona"`
	Rationale         string            `json:"rationale"`
	DecisionTrace     DecisionTrace     `json:"decision_trace"`
	BehavioralSignals BehavioralSignals `json:"behavioral_signals"`
}
