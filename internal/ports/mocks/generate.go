//go:generate mockgen -source=../kv_storage.go     -destination=./mock_kv_storage.go     -package=mocks
//go:generate mockgen -source=../catalog_source.go -destination=./mock_catalog_source.go -package=mocks
//go:generate mockgen -source=../query_cache.go    -destination=./mock_query_cache.go    -package=mocks
//go:generate mockgen -source=../cart_events.go    -destination=./mock_cart_events.go    -package=mocks
//go:generate mockgen -source=../cart_service.go   -destination=./mock_cart_service.go   -package=mocks

package mocks
