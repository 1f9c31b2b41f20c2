package gateway

import (
	"net/http"

	"github.com/gorilla/mux"

	"reddys-kitchen/web-svc/internal/app"
	"reddys-kitchen/web-svc/internal/checkout"
)

// RegisterUIRoutes exposes the app commands and read models to the browser.
func (g *Gateway) RegisterUIRoutes(r *mux.Router) {
	r.HandleFunc("/state", g.getState).Methods("GET")
	r.HandleFunc("/home", g.getHome).Methods("GET")
	r.HandleFunc("/restaurants", g.getRestaurants).Methods("GET")
	r.HandleFunc("/cart", g.getCart).Methods("GET")
	r.HandleFunc("/orders", g.getOrders).Methods("GET")

	r.HandleFunc("/reload", g.reload).Methods("POST")
	r.HandleFunc("/navigate", g.navigate).Methods("POST")
	r.HandleFunc("/filters/cuisine", g.setCuisine).Methods("POST")
	r.HandleFunc("/filters/type", g.setType).Methods("POST")
	r.HandleFunc("/filters/jump", g.jumpToType).Methods("POST")
	r.HandleFunc("/search", g.search).Methods("POST")

	r.HandleFunc("/cart/add", g.addToCart).Methods("POST")
	r.HandleFunc("/cart/increment", g.cartCommand(g.app.Increment)).Methods("POST")
	r.HandleFunc("/cart/decrement", g.cartCommand(g.app.Decrement)).Methods("POST")
	r.HandleFunc("/cart/remove", g.cartCommand(g.app.Remove)).Methods("POST")

	r.HandleFunc("/checkout", g.checkout).Methods("POST")
	r.HandleFunc("/notice/dismiss", g.dismissNotice).Methods("POST")
}

func (g *Gateway) getState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, g.app.State())
}

func (g *Gateway) getHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, g.app.Home())
}

func (g *Gateway) getRestaurants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, g.app.Restaurants())
}

func (g *Gateway) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, g.app.Cart())
}

func (g *Gateway) getOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, g.app.Orders())
}

func (g *Gateway) reload(w http.ResponseWriter, r *http.Request) {
	g.app.LoadCatalog(r.Context())
	g.app.RefreshOrders(r.Context())
	writeJSON(w, http.StatusOK, g.app.State())
}

func (g *Gateway) navigate(w http.ResponseWriter, r *http.Request) {
	var req valueRequest
	if !decode(w, r, &req) {
		return
	}
	if err := g.app.Navigate(app.View(req.Value)); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, g.app.State())
}

func (g *Gateway) setCuisine(w http.ResponseWriter, r *http.Request) {
	var req valueRequest
	if !decode(w, r, &req) {
		return
	}
	g.app.SetCuisine(req.Value)
	writeJSON(w, http.StatusOK, g.app.Restaurants())
}

func (g *Gateway) setType(w http.ResponseWriter, r *http.Request) {
	var req valueRequest
	if !decode(w, r, &req) {
		return
	}
	g.app.SetType(req.Value)
	writeJSON(w, http.StatusOK, g.app.Restaurants())
}

func (g *Gateway) jumpToType(w http.ResponseWriter, r *http.Request) {
	var req valueRequest
	if !decode(w, r, &req) {
		return
	}
	g.app.JumpToType(req.Value)
	writeJSON(w, http.StatusOK, g.app.Restaurants())
}

func (g *Gateway) search(w http.ResponseWriter, r *http.Request) {
	var req valueRequest
	if !decode(w, r, &req) {
		return
	}
	g.app.Search(req.Value)
	writeJSON(w, http.StatusOK, g.app.Restaurants())
}

// addToCart answers 200 with the cart even for unknown ids; those are ignored.
func (g *Gateway) addToCart(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if !decode(w, r, &req) {
		return
	}
	g.app.Add(req.RestaurantID, req.ItemID)
	writeJSON(w, http.StatusOK, g.app.Cart())
}

func (g *Gateway) cartCommand(command func(restaurantID, itemID string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req itemRequest
		if !decode(w, r, &req) {
			return
		}
		command(req.RestaurantID, req.ItemID)
		writeJSON(w, http.StatusOK, g.app.Cart())
	}
}

func (g *Gateway) checkout(w http.ResponseWriter, r *http.Request) {
	var form checkout.Form
	if !decode(w, r, &form) {
		return
	}

	order, err := g.app.Checkout(r.Context(), form)
	if err != nil {
		status, notice := checkoutFailure(err)
		writeMessage(w, status, notice)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"order": order,
		"state": g.app.State(),
	})
}

func (g *Gateway) dismissNotice(w http.ResponseWriter, r *http.Request) {
	g.app.DismissNotice()
	w.WriteHeader(http.StatusNoContent)
}
