package model

import "time"

// Task is an organizing to-do item.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Assignee    string     `json:"assignee"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	Category    string     `json:"category"`
}

type TaskPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Assignee    *string    `json:"assignee"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	Category    *string    `json:"category"`
}

func (t Task) Merge(patch TaskPatch) Task {
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Assignee != nil {
		t.Assignee = *patch.Assignee
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		t.DueDate = patch.DueDate
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	return t
}

// Logistics is a venue/equipment line item.
type Logistics struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
	Vendor   string `json:"vendor"`
	Cost     int    `json:"cost"`
	Notes    string `json:"notes"`
}

type LogisticsPatch struct {
	Category *string `json:"category"`
	Item     *string `json:"item"`
	Quantity *int    `json:"quantity"`
	Status   *string `json:"status"`
	Vendor   *string `json:"vendor"`
	Cost     *int    `json:"cost"`
	Notes    *string `json:"notes"`
}

func (l Logistics) Merge(patch LogisticsPatch) Logistics {
	if patch.Category != nil {
		l.Category = *patch.Category
	}
	if patch.Item != nil {
		l.Item = *patch.Item
	}
	if patch.Quantity != nil {
		l.Quantity = *patch.Quantity
	}
	if patch.Status != nil {
		l.Status = *patch.Status
	}
	if patch.Vendor != nil {
		l.Vendor = *patch.Vendor
	}
	if patch.Cost != nil {
		l.Cost = *patch.Cost
	}
	if patch.Notes != nil {
		l.Notes = *patch.Notes
	}
	return l
}

// Marketing is an outreach campaign.
type Marketing struct {
	ID             string     `json:"id"`
	Campaign       string     `json:"campaign"`
	Platform       string     `json:"platform"`
	Reach          int        `json:"reach"`
	Status         string     `json:"status"`
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	BestTimeToPost string     `json:"bestTimeToPost"`
	ContentType    string     `json:"contentType"`
	Engagement     int        `json:"engagement"`
	Notes          string     `json:"notes"`
}

type MarketingPatch struct {
	Campaign       *string    `json:"campaign"`
	Platform       *string    `json:"platform"`
	Reach          *int       `json:"reach"`
	Status         *string    `json:"status"`
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	BestTimeToPost *string    `json:"bestTimeToPost"`
	ContentType    *string    `json:"contentType"`
	Engagement     *int       `json:"engagement"`
	Notes          *string    `json:"notes"`
}

func (m Marketing) Merge(patch MarketingPatch) Marketing {
	if patch.Campaign != nil {
		m.Campaign = *patch.Campaign
	}
	if patch.Platform != nil {
		m.Platform = *patch.Platform
	}
	if patch.Reach != nil {
		m.Reach = *patch.Reach
	}
	if patch.Status != nil {
		m.Status = *patch.Status
	}
	if patch.StartDate != nil {
		m.StartDate = patch.StartDate
	}
	if patch.EndDate != nil {
		m.EndDate = patch.EndDate
	}
	if patch.BestTimeToPost != nil {
		m.BestTimeToPost = *patch.BestTimeToPost
	}
	if patch.ContentType != nil {
		m.ContentType = *patch.ContentType
	}
	if patch.Engagement != nil {
		m.Engagement = *patch.Engagement
	}
	if patch.Notes != nil {
		m.Notes = *patch.Notes
	}
	return m
}

// Sponsorship is a sponsor pledge.
type Sponsorship struct {
	ID       string `json:"id"`
	Sponsor  string `json:"sponsor"`
	Tier     string `json:"tier"`
	Amount   int    `json:"amount"`
	Contact  string `json:"contact"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Benefits string `json:"benefits"`
	Status   string `json:"status"`
}

type SponsorshipPatch struct {
	Sponsor  *string `json:"sponsor"`
	Tier     *string `json:"tier"`
	Amount   *int    `json:"amount"`
	Contact  *string `json:"contact"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Benefits *string `json:"benefits"`
	Status   *string `json:"status"`
}

func (s Sponsorship) Merge(patch SponsorshipPatch) Sponsorship {
	if patch.Sponsor != nil {
		s.Sponsor = *patch.Sponsor
	}
	if patch.Tier != nil {
		s.Tier = *patch.Tier
	}
	if patch.Amount != nil {
		s.Amount = *patch.Amount
	}
	if patch.Contact != nil {
		s.Contact = *patch.Contact
	}
	if patch.Email != nil {
		s.Email = *patch.Email
	}
	if patch.Phone != nil {
		s.Phone = *patch.Phone
	}
	if patch.Benefits != nil {
		s.Benefits = *patch.Benefits
	}
	if patch.Status != nil {
		s.Status = *patch.Status
	}
	return s
}

// Update is a published announcement. Timestamp is set at creation.
type Update struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

type UpdatePatch struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	Author   *string `json:"author"`
}

func (u Update) Merge(patch UpdatePatch) Update {
	if patch.Title != nil {
		u.Title = *patch.Title
	}
	if patch.Content != nil {
		u.Content = *patch.Content
	}
	if patch.Category != nil {
		u.Category = *patch.Category
	}
	if patch.Author != nil {
		u.Author = *patch.Author
	}
	return u
}

// AppSettings is a singleton record used for display formatting.
type AppSettings struct {
	ID             string `json:"id"`
	Currency       string `json:"currency"`
	CurrencySymbol string `json:"currencySymbol"`
}

type AppSettingsPatch struct {
	Currency       *string `json:"currency"`
	CurrencySymbol *string `json:"currencySymbol"`
}

func (a AppSettings) Merge(patch AppSettingsPatch) AppSettings {
	if patch.Currency != nil {
		a.Currency = *patch.Currency
	}
	if patch.CurrencySymbol != nil {
		a.CurrencySymbol = *patch.CurrencySymbol
	}
	return a
}
