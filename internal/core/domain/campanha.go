package domain

import "time"

// Campanha is a marketing campaign: a date window, target channels,
// audience segment tags and outcome metrics filled in as results arrive.
type Campanha struct {
	ID                 string
	Nome               string
	Objetivo           string
	DataInicio         string
	DataFim            string
	Canais             []string
	PublicosSegmentados []string
	ClientesAtingidos  int
	TaxaResposta       float64
	Conversao          float64
	ROI                float64
	DataCriacao        string
}

// NovaCampanha validates every field and returns a campaign ready to
// persist. Outcome metrics start at zero; dataCriacao defaults to now.
func NovaCampanha(id, nome, objetivo, dataInicio, dataFim string, canais, publicos []string) (*Campanha, error) {
	if nome == "" {
		return nil, NewValidationError("nome", nome, "obrigatório")
	}
	c := &Campanha{
		ID:                  id,
		Nome:                nome,
		Objetivo:            objetivo,
		Canais:              []string{},
		PublicosSegmentados: publicos,
		DataCriacao:         time.Now().Format(LayoutDataHora),
	}
	if err := c.SetDataInicio(dataInicio); err != nil {
		return nil, err
	}
	if err := c.SetDataFim(dataFim); err != nil {
		return nil, err
	}
	for _, canal := range canais {
		if err := c.AdicionarCanal(canal); err != nil {
			return nil, err
		}
	}
	if c.PublicosSegmentados == nil {
		c.PublicosSegmentados = []string{}
	}
	return c, nil
}

// SetDataInicio assigns the start date (YYYY-MM-DD).
func (c *Campanha) SetDataInicio(data string) error {
	if !ValidData(data, LayoutData) {
		return NewValidationError("data_inicio", data, "formato esperado YYYY-MM-DD")
	}
	c.DataInicio = data
	return nil
}

// SetDataFim assigns the end date. The start date must have been set
// first; an end date earlier than the start date is rejected (equal dates
// make a one-day campaign and are accepted).
func (c *Campanha) SetDataFim(data string) error {
	if !ValidData(data, LayoutData) {
		return NewValidationError("data_fim", data, "formato esperado YYYY-MM-DD")
	}
	if c.DataInicio == "" {
		return NewValidationError("data_fim", data, "data_inicio deve ser definida antes")
	}
	if data < c.DataInicio {
		return NewValidationError("data_fim", data, "não pode ser anterior a data_inicio")
	}
	c.DataFim = data
	return nil
}

// AdicionarCanal appends a target channel (email, sms or whatsapp).
func (c *Campanha) AdicionarCanal(canal string) error {
	if !ValidCanal(canal) {
		return NewValidationError("canais", canal, "canal deve ser email, sms ou whatsapp")
	}
	c.Canais = append(c.Canais, canal)
	return nil
}

// RegistrarResultados assigns the outcome metrics. ROI is unrestricted
// (a campaign can lose money).
func (c *Campanha) RegistrarResultados(clientesAtingidos int, taxaResposta, conversao, roi float64) error {
	if clientesAtingidos < 0 {
		return NewValidationError("clientes_atingidos", clientesAtingidos, "não pode ser negativo")
	}
	if !ValidTaxa(taxaResposta) {
		return NewValidationError("taxa_resposta", taxaResposta, "deve estar entre 0 e 100")
	}
	if !ValidTaxa(conversao) {
		return NewValidationError("conversao", conversao, "deve estar entre 0 e 100")
	}
	c.ClientesAtingidos = clientesAtingidos
	c.TaxaResposta = taxaResposta
	c.Conversao = conversao
	c.ROI = roi
	return nil
}

// EstaAtiva reports whether the given date (YYYY-MM-DD) falls inside the
// campaign window, inclusive on both ends.
func (c *Campanha) EstaAtiva(data string) bool {
	return c.DataInicio <= data && data <= c.DataFim
}

// Representation returns the storable key-value form of the record.
func (c *Campanha) Representation() Representation {
	return Representation{
		"id":                   c.ID,
		"nome":                 c.Nome,
		"objetivo":             c.Objetivo,
		"data_inicio":          c.DataInicio,
		"data_fim":             c.DataFim,
		"canais":               c.Canais,
		"publicos_segmentados": c.PublicosSegmentados,
		"clientes_atingidos":   c.ClientesAtingidos,
		"taxa_resposta":        c.TaxaResposta,
		"conversao":            c.Conversao,
		"roi":                  c.ROI,
		"data_criacao":         c.DataCriacao,
	}
}

// CampanhaFromRepresentation rehydrates a persisted record without
// re-running validation.
func CampanhaFromRepresentation(rep Representation) *Campanha {
	c := &Campanha{
		ID:                  repString(rep, "id"),
		Nome:                repString(rep, "nome"),
		Objetivo:            repString(rep, "objetivo"),
		DataInicio:          repString(rep, "data_inicio"),
		DataFim:             repString(rep, "data_fim"),
		Canais:              repStringSlice(rep, "canais"),
		PublicosSegmentados: repStringSlice(rep, "publicos_segmentados"),
		ClientesAtingidos:   repInt(rep, "clientes_atingidos"),
		TaxaResposta:        repFloat(rep, "taxa_resposta"),
		Conversao:           repFloat(rep, "conversao"),
		ROI:                 repFloat(rep, "roi"),
		DataCriacao:         repString(rep, "data_criacao"),
	}
	if c.Canais == nil {
		c.Canais = []string{}
	}
	if c.PublicosSegmentados == nil {
		c.PublicosSegmentados = []string{}
	}
	return c
}
