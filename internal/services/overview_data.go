package services

import "github.com/h2grid/h2grid-api/internal/types/business"

// SampleOverview is placeholder overview content shown until project
// tracking is backed by real data
func SampleOverview() business.Overview {
	return business.Overview{
		Stats: business.OverviewStats{
			TotalProjects:     12,
			ActiveProjects:    8,
			CompletedProjects: 3,
			TotalRevenue:      "₹4.2Cr",
			CO2Reduced:        "1250 tons",
			HydrogenProduced:  "25,000 kg",
		},
		Projects: []business.ProjectSummary{
			{ID: 1, Name: "Delhi Hydrogen Plant", Status: "active", Progress: 75, Timeline: "Q4 2024", Budget: "₹1.2Cr", Team: 8},
			{ID: 2, Name: "Mumbai Storage Facility", Status: "completed", Progress: 100, Timeline: "Q2 2024", Budget: "₹85L", Team: 5},
			{ID: 3, Name: "Bengaluru Distribution", Status: "planning", Progress: 30, Timeline: "Q1 2025", Budget: "₹2.1Cr", Team: 12},
			{ID: 4, Name: "Chennai Refueling Station", Status: "active", Progress: 60, Timeline: "Q3 2024", Budget: "₹65L", Team: 4},
		},
		Activities: []business.Activity{
			{ID: 1, Action: "Project Update", Project: "Delhi Plant", User: "Arjun Singh", Time: "2 hours ago"},
			{ID: 2, Action: "Document Uploaded", Project: "Mumbai Facility", User: "Priya Sharma", Time: "5 hours ago"},
			{ID: 3, Action: "New Project Created", Project: "Hyderabad Expansion", User: "Rahul Verma", Time: "1 day ago"},
			{ID: 4, Action: "Budget Approved", Project: "Chennai Station", User: "Neha Gupta", Time: "2 days ago"},
			{ID: 5, Action: "Team Member Added", Project: "Bengaluru Distribution", User: "Vikram Patel", Time: "3 days ago"},
		},
	}
}
