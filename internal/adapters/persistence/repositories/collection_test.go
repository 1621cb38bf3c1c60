package repositories

import (
	"context"
	"testing"

	"pizzaria-crm/internal/adapters/persistence/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) store.Store {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return store.NewRedisStore(client, "crm")
}

func TestCollectionCriarRejectsBadInput(t *testing.T) {
	col := NewCollection(setupStore(t), "itens")
	ctx := context.Background()

	assert.False(t, col.Criar(ctx, "", store.Document{"a": 1}))
	assert.False(t, col.Criar(ctx, "x", nil))
	assert.Equal(t, 0, col.Contar(ctx))
}

func TestCollectionCriarOverwrites(t *testing.T) {
	col := NewCollection(setupStore(t), "itens")
	ctx := context.Background()

	require.True(t, col.Criar(ctx, "x", store.Document{"nome": "Ana", "email": "a@b.com"}))
	require.True(t, col.Criar(ctx, "x", store.Document{"nome": "Bia"}))

	doc := col.BuscarPorID(ctx, "x")
	require.NotNil(t, doc)
	assert.Equal(t, "Bia", doc["nome"])
	_, hasEmail := doc["email"]
	assert.False(t, hasEmail, "Criar replaces the whole record")
	assert.Equal(t, 1, col.Contar(ctx))
}

func TestCollectionBuscarPorID(t *testing.T) {
	col := NewCollection(setupStore(t), "itens")
	ctx := context.Background()

	assert.Nil(t, col.BuscarPorID(ctx, ""))
	assert.Nil(t, col.BuscarPorID(ctx, "nope"))

	require.True(t, col.Criar(ctx, "x", store.Document{"nome": "Ana"}))
	assert.NotNil(t, col.BuscarPorID(ctx, "x"))
}

func TestCollectionAtualizarNeverCreates(t *testing.T) {
	col := NewCollection(setupStore(t), "itens")
	ctx := context.Background()

	assert.False(t, col.Atualizar(ctx, "fantasma", store.Document{"nome": "Ana"}))
	assert.False(t, col.Existe(ctx, "fantasma"), "failed update must not create the record")
}

func TestCollectionAtualizarPatches(t *testing.T) {
	col := NewCollection(setupStore(t), "itens")
	ctx := context.Background()

	require.True(t, col.Criar(ctx, "x", store.Document{"nome": "Ana", "email": "a@b.com"}))
	require.True(t, col.Atualizar(ctx, "x", store.Document{"email": "novo@b.com"}))

	doc := col.BuscarPorID(ctx, "x")
	assert.Equal(t, "Ana", doc["nome"], "untouched fields survive")
	assert.Equal(t, "novo@b.com", doc["email"])
}

func TestCollectionDeletar(t *testing.T) {
	col := NewCollection(setupStore(t), "itens")
	ctx := context.Background()

	assert.False(t, col.Deletar(ctx, "fantasma"))
	assert.False(t, col.Deletar(ctx, ""))

	require.True(t, col.Criar(ctx, "x", store.Document{"nome": "Ana"}))
	assert.True(t, col.Deletar(ctx, "x"))
	assert.False(t, col.Existe(ctx, "x"))
	assert.False(t, col.Deletar(ctx, "x"), "second delete finds nothing")
}

func TestCollectionListarTodosEmpty(t *testing.T) {
	col := NewCollection(setupStore(t), "itens")
	docs := col.ListarTodos(context.Background())
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}
