// Package model contains the record types shared across the application.
//
// Records reference each other by soft id + denormalized-name pairs rather
// than enforced foreign keys; renames are not propagated to existing records.
package model

// Portfolio is a country or NGO seat assignable to a delegate.
type Portfolio struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	IsAvailable int    `json:"isAvailable"`
}

// PortfolioPatch carries the fields of a partial portfolio update. Nil
// fields are left untouched by Merge.
type PortfolioPatch struct {
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	IsAvailable *int    `json:"isAvailable"`
}

// Merge applies the patch to a copy of p, overwriting only present fields.
func (p Portfolio) Merge(patch PortfolioPatch) Portfolio {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.IsAvailable != nil {
		p.IsAvailable = *patch.IsAvailable
	}
	return p
}

// Delegate is a registered conference participant.
type Delegate struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	School           string `json:"school"`
	CommitteeID      string `json:"committeeId"`
	Committee        string `json:"committee"`
	PortfolioID      string `json:"portfolioId"`
	Portfolio        string `json:"portfolio"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Status           string `json:"status"`
	PerformanceScore int    `json:"performanceScore"`
	Notes            string `json:"notes"`
}

// Delegate lifecycle statuses.
const (
	StatusRegistered = "registered"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked-in"
)

type DelegatePatch struct {
	Name             *string `json:"name"`
	School           *string `json:"school"`
	CommitteeID      *string `json:"committeeId"`
	Committee        *string `json:"committee"`
	PortfolioID      *string `json:"portfolioId"`
	Portfolio        *string `json:"portfolio"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	Status           *string `json:"status"`
	PerformanceScore *int    `json:"performanceScore"`
	Notes            *string `json:"notes"`
}

func (d Delegate) Merge(patch DelegatePatch) Delegate {
	if patch.Name != nil {
		d.Name = *patch.Name
	}
	if patch.School != nil {
		d.School = *patch.School
	}
	if patch.CommitteeID != nil {
		d.CommitteeID = *patch.CommitteeID
	}
	if patch.Committee != nil {
		d.Committee = *patch.Committee
	}
	if patch.PortfolioID != nil {
		d.PortfolioID = *patch.PortfolioID
	}
	if patch.Portfolio != nil {
		d.Portfolio = *patch.Portfolio
	}
	if patch.Email != nil {
		d.Email = *patch.Email
	}
	if patch.Phone != nil {
		d.Phone = *patch.Phone
	}
	if patch.Status != nil {
		d.Status = *patch.Status
	}
	if patch.PerformanceScore != nil {
		d.PerformanceScore = *patch.PerformanceScore
	}
	if patch.Notes != nil {
		d.Notes = *patch.Notes
	}
	return d
}

// Committee is a simulated deliberative body with its own agenda and roster.
type Committee struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Topic           string `json:"topic"`
	Agenda          string `json:"agenda"`
	Chairperson     string `json:"chairperson"`
	ViceChairperson string `json:"viceChairperson"`
	Rapporteur      string `json:"rapporteur"`
	SessionCount    int    `json:"sessionCount"`
	Status          string `json:"status"`
	Portfolios      string `json:"portfolios"`
}

type CommitteePatch struct {
	Name            *string `json:"name"`
	Topic           *string `json:"topic"`
	Agenda          *string `json:"agenda"`
	Chairperson     *string `json:"chairperson"`
	ViceChairperson *string `json:"viceChairperson"`
	Rapporteur      *string `json:"rapporteur"`
	SessionCount    *int    `json:"sessionCount"`
	Status          *string `json:"status"`
	Portfolios      *string `json:"portfolios"`
}

func (c Committee) Merge(patch CommitteePatch) Committee {
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Topic != nil {
		c.Topic = *patch.Topic
	}
	if patch.Agenda != nil {
		c.Agenda = *patch.Agenda
	}
	if patch.Chairperson != nil {
		c.Chairperson = *patch.Chairperson
	}
	if patch.ViceChairperson != nil {
		c.ViceChairperson = *patch.ViceChairperson
	}
	if patch.Rapporteur != nil {
		c.Rapporteur = *patch.Rapporteur
	}
	if patch.SessionCount != nil {
		c.SessionCount = *patch.SessionCount
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	if patch.Portfolios != nil {
		c.Portfolios = *patch.Portfolios
	}
	return c
}

// Secretariat is an organizing-team member.
type Secretariat struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Position         string `json:"position"`
	Department       string `json:"department"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Responsibilities string `json:"responsibilities"`
}

type SecretariatPatch struct {
	Name             *string `json:"name"`
	Position         *string `json:"position"`
	Department       *string `json:"department"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	Responsibilities *string `json:"responsibilities"`
}

func (s Secretariat) Merge(patch SecretariatPatch) Secretariat {
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Position != nil {
		s.Position = *patch.Position
	}
	if patch.Department != nil {
		s.Department = *patch.Department
	}
	if patch.Email != nil {
		s.Email = *patch.Email
	}
	if patch.Phone != nil {
		s.Phone = *patch.Phone
	}
	if patch.Responsibilities != nil {
		s.Responsibilities = *patch.Responsibilities
	}
	return s
}

// ExecutiveBoard is a committee leadership position.
type ExecutiveBoard struct {
	ID               string `json:"id"`
	Position         string `json:"position"`
	Name             string `json:"name"`
	Responsibilities string `json:"responsibilities"`
	Department       string `json:"department"`
	Email            string `json:"email"`
	ReportsTo        string `json:"reportsTo"`
}

type ExecutiveBoardPatch struct {
	Position         *string `json:"position"`
	Name             *string `json:"name"`
	Responsibilities *string `json:"responsibilities"`
	Department       *string `json:"department"`
	Email            *string `json:"email"`
	ReportsTo        *string `json:"reportsTo"`
}

func (e ExecutiveBoard) Merge(patch ExecutiveBoardPatch) ExecutiveBoard {
	if patch.Position != nil {
		e.Position = *patch.Position
	}
	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.Responsibilities != nil {
		e.Responsibilities = *patch.Responsibilities
	}
	if patch.Department != nil {
		e.Department = *patch.Department
	}
	if patch.Email != nil {
		e.Email = *patch.Email
	}
	if patch.ReportsTo != nil {
		e.ReportsTo = *patch.ReportsTo
	}
	return e
}
