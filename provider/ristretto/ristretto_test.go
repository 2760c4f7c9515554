package ristretto

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/unkn0wn-root/nanowire"
	"github.com/unkn0wn-root/nanowire/codec"
	"github.com/unkn0wn-root/nanowire/store"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	p, err := New(Config{NumCounters: 1e4, MaxCost: 1 << 20, BufferItems: 64, Synchronous: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = p.Close(context.Background()) })
	return p
}

func TestInvalidConfig(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("New accepted zero config")
	}
}

func TestGetSetDel(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	if _, ok, err := p.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("miss expected, ok=%v err=%v", ok, err)
	}
	val := []byte{1, 2, 3}
	if ok, err := p.Set(ctx, "k", val, 0, -time.Second); !ok || err != nil {
		t.Fatalf("Set ok=%v err=%v", ok, err)
	}
	got, ok, err := p.Get(ctx, "k")
	if !ok || err != nil || !bytes.Equal(got, val) {
		t.Fatalf("Get = %v, %v, %v", got, ok, err)
	}
	if err := p.Del(ctx, "k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok, _ := p.Get(ctx, "k"); ok {
		t.Fatalf("entry survived Del")
	}
}

func TestUnexpectedShapeDropped(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)
	p.c.Set("k", "not bytes", 1)
	p.c.Wait()

	if _, ok, err := p.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("foreign shape should miss, ok=%v err=%v", ok, err)
	}
	if _, found := p.c.Get("k"); found {
		t.Fatalf("foreign shape was not dropped")
	}
}

type item struct {
	SKU   string
	Count uint32
}

func (it *item) MarshalNano(s nanowire.Serializer) error {
	if err := s.EncodeStr(it.SKU); err != nil {
		return err
	}
	return s.EncodeU32(it.Count)
}

func (it *item) UnmarshalNano(d nanowire.Deserializer) (err error) {
	if it.SKU, err = d.DecodeStr(); err != nil {
		return err
	}
	it.Count, err = d.DecodeU32()
	return err
}

func TestStoreOverRistretto(t *testing.T) {
	ctx := context.Background()
	s, err := store.New(store.Options[item]{
		Namespace: "inventory",
		Provider:  newTestProvider(t),
		Codec:     codec.Dense[item, *item]{RejectTrailing: true},
	})
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	in := item{SKU: "sku-1", Count: 12}
	if err := s.Set(ctx, "a", in, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	out, ok, err := s.Get(ctx, "a")
	if err != nil || !ok || out != in {
		t.Fatalf("Get = %+v, %v, %v", out, ok, err)
	}
}
