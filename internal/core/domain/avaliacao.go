package domain

import "time"

// Categoria is the derived rating band; it is never stored.
type Categoria string

const (
	CategoriaExcelente Categoria = "Excelente"
	CategoriaBoa       Categoria = "Boa"
	CategoriaRegular   Categoria = "Regular"
	CategoriaRuim      Categoria = "Ruim"
)

// Avaliacao is a rating event: who rated, who or what was rated
// (free-form, e.g. "motoboy:123" or a name), a score in [1,5], an
// optional comment and a timestamp.
type Avaliacao struct {
	ID         string
	Avaliador  string
	Avaliado   string
	Nota       float64
	Comentario string
	DataHora   string
}

// NovaAvaliacao validates every field and returns a rating ready to
// persist. dataHora defaults to the current time when empty.
func NovaAvaliacao(id, avaliador, avaliado string, nota float64, comentario, dataHora string) (*Avaliacao, error) {
	if avaliador == "" {
		return nil, NewValidationError("avaliador", avaliador, "obrigatório")
	}
	if avaliado == "" {
		return nil, NewValidationError("avaliado", avaliado, "obrigatório")
	}
	if !ValidNota(nota) {
		return nil, NewValidationError("nota", nota, "deve estar entre 1 e 5")
	}
	if dataHora == "" {
		dataHora = time.Now().Format(LayoutDataHora)
	} else if !ValidData(dataHora, LayoutDataHora) {
		return nil, NewValidationError("data_hora", dataHora, "formato esperado YYYY-MM-DD HH:MM:SS")
	}
	return &Avaliacao{
		ID:         id,
		Avaliador:  avaliador,
		Avaliado:   avaliado,
		Nota:       nota,
		Comentario: comentario,
		DataHora:   dataHora,
	}, nil
}

// EhPositiva reports whether the score is 4 or above.
func (a *Avaliacao) EhPositiva() bool {
	return a.Nota >= 4
}

// EhNegativa reports whether the score is 2 or below.
func (a *Avaliacao) EhNegativa() bool {
	return a.Nota <= 2
}

// Categoria bands the score: Excelente >= 4.5, Boa >= 3.5, Regular >= 2.5,
// anything lower is Ruim.
func (a *Avaliacao) Categoria() Categoria {
	switch {
	case a.Nota >= 4.5:
		return CategoriaExcelente
	case a.Nota >= 3.5:
		return CategoriaBoa
	case a.Nota >= 2.5:
		return CategoriaRegular
	default:
		return CategoriaRuim
	}
}

// Representation returns the storable key-value form of the record.
func (a *Avaliacao) Representation() Representation {
	return Representation{
		"id":         a.ID,
		"avaliador":  a.Avaliador,
		"avaliado":   a.Avaliado,
		"nota":       a.Nota,
		"comentario": a.Comentario,
		"data_hora":  a.DataHora,
	}
}

// AvaliacaoFromRepresentation rehydrates a persisted record without
// re-running validation.
func AvaliacaoFromRepresentation(rep Representation) *Avaliacao {
	return &Avaliacao{
		ID:         repString(rep, "id"),
		Avaliador:  repString(rep, "avaliador"),
		Avaliado:   repString(rep, "avaliado"),
		Nota:       repFloat(rep, "nota"),
		Comentario: repString(rep, "comentario"),
		DataHora:   repString(rep, "data_hora"),
	}
}
