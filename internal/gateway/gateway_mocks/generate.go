package gateway_mocks

//go:generate mockgen -source=../interfaces.go -destination=gateway_mocks.go -package=gateway_mocks
