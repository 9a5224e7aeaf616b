package geocode

import (
	"ambulance-dispatch-service/internal/domain"
	"ambulance-dispatch-service/internal/ports"
	"context"
	"log"
)

// CachedResolver checks an AddressCache before delegating and stores
// successful lookups. Fallback results are never cached.
type CachedResolver struct {
	next  ports.AddressResolver
	cache ports.AddressCache
}

func NewCachedResolver(next ports.AddressResolver, cache ports.AddressCache) *CachedResolver {
	return &CachedResolver{next: next, cache: cache}
}

func (r *CachedResolver) ResolveAddress(ctx context.Context, c domain.LatLng) ports.AddressResult {
	addr, ok, err := r.cache.GetAddress(ctx, c)
	if err != nil {
		log.Printf("op=address.cache.get coord=%q err=%q", c.String(), err)
	} else if ok {
		return ports.ResolvedAddress(addr)
	}

	res := r.next.ResolveAddress(ctx, c)
	if !res.Ok() {
		return res
	}
	if err := r.cache.PutAddress(ctx, c, res.Address); err != nil {
		log.Printf("op=address.cache.put coord=%q err=%q", c.String(), err)
	}
	return res
}
