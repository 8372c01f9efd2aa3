package availability

import "context"

// Store guarda o estado Free/Claimed por chave de slot.
//
// TryClaim é a primitiva atômica central do sistema: entre N chamadas
// concorrentes para a mesma chave, exatamente uma recebe true. Chaves
// nunca vistas são implicitamente livres.
type Store interface {
	IsFree(ctx context.Context, key string) (bool, error)
	TryClaim(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}
