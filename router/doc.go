// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

Routes use Go 1.22+ method patterns on a plain ServeMux. Every handler
is wrapped with request logging; mutating poll routes additionally go
through the RequireUser or RequireAdmin gates so that handlers always
see an authenticated identity in the request context.

	mux := router.NewRouter(svc, registry, cfg)
	http.ListenAndServe(addr, middleware.CORS(mux))
*/
package router
