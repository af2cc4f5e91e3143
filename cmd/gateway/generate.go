package main

// Build the widget and copy the matching JS glue next to the pages the
// gateway serves. Run with: go generate ./cmd/gateway
//go:generate env GOOS=js GOARCH=wasm go build -o ../../web/cart.wasm ../cartwidget
//go:generate cp $GOROOT/lib/wasm/wasm_exec.js ../../web/wasm_exec.js
