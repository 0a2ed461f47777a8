//go:build gomock || generate

package mocks

//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -package mocks -destination congestion.go github.com/yjfxfjch/mvfst/internal/congestion Controller"
//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -package mocks -destination pacer.go github.com/yjfxfjch/mvfst/internal/congestion Pacer"
