package business

// OverviewStats are the headline numbers on the overview tab
type OverviewStats struct {
	TotalProjects     int    `json:"total_projects"`
	ActiveProjects    int    `json:"active_projects"`
	CompletedProjects int    `json:"completed_projects"`
	TotalRevenue      string `json:"total_revenue"`
	CO2Reduced        string `json:"co2_reduced"`
	HydrogenProduced  string `json:"hydrogen_produced"`
}

// ProjectSummary is one row of the projects tab
type ProjectSummary struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
	Timeline string `json:"timeline"`
	Budget   string `json:"budget"`
	Team     int    `json:"team"`
}

// Activity is a recent event in the activity feed
type Activity struct {
	ID      int    `json:"id"`
	Action  string `json:"action"`
	Project string `json:"project"`
	User    string `json:"user"`
	Time    string `json:"time"`
}

// Overview is the overview tab payload
type Overview struct {
	Stats      OverviewStats    `json:"stats"`
	Projects   []ProjectSummary `json:"projects"`
	Activities []Activity       `json:"activities"`
}
