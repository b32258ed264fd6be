package domain

import "strings"

type LeadStatus string

const (
	LeadHot  LeadStatus = "Hot"
	LeadWarm LeadStatus = "Warm"
	LeadCold LeadStatus = "Cold"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadHot, LeadWarm, LeadCold:
		return true
	}
	return false
}

// Lead é um prospecto informado pelo usuário para pontuação
type Lead struct {
	Name       string  `json:"name"`
	Engagement float64 `json:"engagement"`
	Budget     float64 `json:"budget"`
}

// LeadScoreResult é devolvido pelo backend na ordem em que ele escolher;
// nenhuma reordenação é feita no cliente.
type LeadScoreResult struct {
	Name   string     `json:"name"`
	Score  float64    `json:"score"`
	Status LeadStatus `json:"status"`
	Action *string    `json:"action,omitempty"`
}

// LeadField identifica um campo editável de um Lead
type LeadField string

const (
	LeadFieldName       LeadField = "name"
	LeadFieldEngagement LeadField = "engagement"
	LeadFieldBudget     LeadField = "budget"
)

// LeadList é a lista editável de leads. Ela nunca fica vazia: remover o
// último lead restante não tem efeito.
type LeadList struct {
	leads []Lead
}

// NewLeadList cria a lista com um único lead em branco
func NewLeadList() *LeadList {
	return &LeadList{leads: []Lead{{}}}
}

// NewLeadListFrom copia os leads informados; uma entrada vazia vira um lead em branco.
func NewLeadListFrom(leads []Lead) *LeadList {
	if len(leads) == 0 {
		return NewLeadList()
	}
	copied := make([]Lead, len(leads))
	copy(copied, leads)
	return &LeadList{leads: copied}
}

func (l *LeadList) Len() int {
	return len(l.leads)
}

// Leads devolve uma cópia da lista
func (l *LeadList) Leads() []Lead {
	snapshot := make([]Lead, len(l.leads))
	copy(snapshot, l.leads)
	return snapshot
}

// Add acrescenta um lead em branco no final e devolve sua posição
func (l *LeadList) Add() int {
	l.leads = append(l.leads, Lead{})
	return len(l.leads) - 1
}

// Remove apaga o lead da posição i. Devolve false quando nada foi removido
// (posição inválida ou último lead restante).
func (l *LeadList) Remove(i int) bool {
	if len(l.leads) <= 1 || !l.inRange(i) {
		return false
	}
	l.leads = append(l.leads[:i:i], l.leads[i+1:]...)
	return true
}

func (l *LeadList) SetName(i int, name string) bool {
	if !l.inRange(i) {
		return false
	}
	l.leads[i].Name = name
	return true
}

func (l *LeadList) SetEngagement(i int, engagement float64) bool {
	if !l.inRange(i) {
		return false
	}
	l.leads[i].Engagement = engagement
	return true
}

func (l *LeadList) SetBudget(i int, budget float64) bool {
	if !l.inRange(i) {
		return false
	}
	l.leads[i].Budget = budget
	return true
}

// MissingNames devolve as posições dos leads sem nome; nome só com espaços conta como vazio
func (l *LeadList) MissingNames() []int {
	var missing []int
	for i, lead := range l.leads {
		if strings.TrimSpace(lead.Name) == "" {
			missing = append(missing, i)
		}
	}
	return missing
}

func (l *LeadList) inRange(i int) bool {
	return i >= 0 && i < len(l.leads)
}
