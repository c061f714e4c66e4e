package http

// Validation happens in the action layer so that failures come back as
// ActionResult rather than a transport-level 400.
type createReq struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	BusinessValue string `json:"business_value"`
	ImpactScore   int    `json:"impact_score"`
	UrgencyScore  int    `json:"urgency_score"`
	EffortSize    string `json:"effort_size"`
}

type updateStatusReq struct {
	Status string `json:"status"`
}
