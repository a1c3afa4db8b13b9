package repository

import (
	"time"

	"github.com/okian/plenum/internal/domain/model"
)

var _ Store = (*MemStore)(nil)

// seedData loads the default conference fixtures: the standard portfolio
// roster, a sample delegate/committee/task/update, the four default rubric
// criteria, the five award tiers and USD settings.
func (s *MemStore) seedData() {
	portfolios := []model.Portfolio{
		{Name: "United States", Type: "Country", IsAvailable: 1},
		{Name: "China", Type: "Country", IsAvailable: 1},
		{Name: "Russia", Type: "Country", IsAvailable: 1},
		{Name: "United Kingdom", Type: "Country", IsAvailable: 1},
		{Name: "France", Type: "Country", IsAvailable: 1},
		{Name: "Germany", Type: "Country", IsAvailable: 1},
		{Name: "India", Type: "Country", IsAvailable: 1},
		{Name: "Japan", Type: "Country", IsAvailable: 1},
		{Name: "Brazil", Type: "Country", IsAvailable: 1},
		{Name: "Canada", Type: "Country", IsAvailable: 1},
		{Name: "Australia", Type: "Country", IsAvailable: 1},
		{Name: "South Africa", Type: "Country", IsAvailable: 1},
		{Name: "Saudi Arabia", Type: "Country", IsAvailable: 1},
		{Name: "Mexico", Type: "Country", IsAvailable: 1},
		{Name: "South Korea", Type: "Country", IsAvailable: 1},
		{Name: "WHO", Type: "NGO", IsAvailable: 1},
		{Name: "UNESCO", Type: "NGO", IsAvailable: 1},
		{Name: "UNICEF", Type: "NGO", IsAvailable: 1},
		{Name: "Red Cross", Type: "NGO", IsAvailable: 1},
		{Name: "Amnesty International", Type: "NGO", IsAvailable: 1},
		{Name: "Greenpeace", Type: "NGO", IsAvailable: 1},
	}
	for _, p := range portfolios {
		p.ID = s.newID()
		s.portfolios.put(p.ID, p)
	}

	s.settings = &model.AppSettings{
		ID:             s.newID(),
		Currency:       "USD",
		CurrencySymbol: "$",
	}

	first := s.portfolios.list()[0]
	delegate := model.Delegate{
		ID:          s.newID(),
		Name:        "Alex Thompson",
		School:      "International High School",
		Committee:   "UNSC",
		PortfolioID: first.ID,
		Portfolio:   first.Name,
		Email:       "alex.thompson@example.com",
		Phone:       "+1 555-0123",
		Status:      model.StatusConfirmed,
		Notes:       "First-time delegate, very enthusiastic",
	}
	s.delegates.put(delegate.ID, delegate)

	committee := model.Committee{
		ID:              s.newID(),
		Name:            "United Nations Security Council",
		Topic:           "Peace and Security in the Middle East",
		Agenda:          "Discussing regional conflicts and peacekeeping operations",
		Chairperson:     "Sarah Johnson",
		ViceChairperson: "Michael Chen",
		Rapporteur:      "Emma Williams",
		SessionCount:    3,
		Status:          "active",
	}
	s.committees.put(committee.ID, committee)

	due := s.now().Add(7 * 24 * time.Hour)
	task := model.Task{
		ID:          s.newID(),
		Title:       "Finalize venue booking",
		Description: "Confirm the main conference hall and breakout rooms",
		Assignee:    "David Martinez",
		Status:      "in-progress",
		Priority:    "high",
		DueDate:     &due,
		Category:    "Logistics",
	}
	s.tasks.put(task.ID, task)

	update := model.Update{
		ID:        s.newID(),
		Title:     "Registration Extended",
		Content:   "Due to popular demand, we've extended the delegate registration deadline by one week. New deadline is March 15, 2025.",
		Category:  "announcement",
		Author:    "Secretary General",
		Timestamp: s.now(),
	}
	s.updates.put(update.ID, update)

	criteria := []model.MarkingCriteria{
		{Name: "Research & Preparation", MaxPoints: 100, Description: "Quality of research and preparation for the topic", OrderIndex: 0},
		{Name: "Communication Skills", MaxPoints: 100, Description: "Effectiveness in verbal and written communication", OrderIndex: 1},
		{Name: "Diplomacy & Negotiation", MaxPoints: 100, Description: "Ability to negotiate and build consensus", OrderIndex: 2},
		{Name: "Participation & Engagement", MaxPoints: 100, Description: "Active participation in debates and discussions", OrderIndex: 3},
	}
	for _, c := range criteria {
		c.ID = s.newID()
		s.criteria.put(c.ID, c)
	}

	tiers := []model.AwardType{
		{Name: "Best Delegate", Description: "Awarded to the top performing delegate", OrderIndex: 0, IsActive: 1},
		{Name: "High Commendation", Description: "Awarded to exceptional delegates", OrderIndex: 1, IsActive: 1},
		{Name: "Special Mention", Description: "Recognition for notable performance", OrderIndex: 2, IsActive: 1},
		{Name: "Verbal Mention", Description: "Honorable verbal recognition", OrderIndex: 3, IsActive: 1},
		{Name: "Honorary Mention", Description: "Honorary recognition", OrderIndex: 4, IsActive: 1},
	}
	for _, t := range tiers {
		t.ID = s.newID()
		s.awardTypes.put(t.ID, t)
	}
}
