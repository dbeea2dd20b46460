package usecase

import "github.com/jhoicas/pedidos-api/internal/domain"

// ListPolicy define cómo responden los listados completos (/all_*) sin filas.
type ListPolicy struct {
	EmptyAsNotFound bool
}

// DefaultListPolicy conserva el 404 en listados vacíos.
var DefaultListPolicy = ListPolicy{EmptyAsNotFound: true}

func (p ListPolicy) check(n int) error {
	if n == 0 && p.EmptyAsNotFound {
		return domain.ErrNotFound
	}
	return nil
}
