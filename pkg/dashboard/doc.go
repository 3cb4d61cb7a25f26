// Package dashboard implements the dashboard poller.
//
// Every interval the poller walks the symbol registry in order and, for each
// symbol, fetches quote and candles through the proxy, converts currency where
// configured, and renders the price text, the up/down/neutral state and a
// smoothed mini chart into the symbol's slot. A failing symbol only degrades
// its own slot; the cycle always reaches the end of the registry.
package dashboard
