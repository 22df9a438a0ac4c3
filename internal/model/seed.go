package model

// DefaultActivities is the catalog inserted into an empty store.
var DefaultActivities = []Activity{
	{
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	},
	{
		Name:            "Programming Class",
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
	},
	{
		Name:            "Gym Class",
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
		Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
	},
	{
		Name:            "Basketball Team",
		Description:     "Competitive basketball team with regular games and practice",
		Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
		MaxParticipants: 15,
		Participants:    []string{},
	},
	{
		Name:            "Swimming Club",
		Description:     "Learn swimming techniques and participate in competitions",
		Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 20,
		Participants:    []string{},
	},
	{
		Name:            "Art Studio",
		Description:     "Express creativity through various art mediums",
		Schedule:        "Wednesdays, 3:30 PM - 5:30 PM",
		MaxParticipants: 15,
		Participants:    []string{},
	},
	{
		Name:            "Drama Club",
		Description:     "Theater performances and acting workshops",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 25,
		Participants:    []string{},
	},
	{
		Name:            "Debate Team",
		Description:     "Develop public speaking and argumentation skills",
		Schedule:        "Fridays, 4:00 PM - 6:00 PM",
		MaxParticipants: 16,
		Participants:    []string{},
	},
	{
		Name:            "Science Club",
		Description:     "Hands-on experiments and scientific research projects",
		Schedule:        "Mondays, 3:30 PM - 5:00 PM",
		MaxParticipants: 18,
		Participants:    []string{},
	},
}
