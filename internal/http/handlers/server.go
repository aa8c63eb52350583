package handlers

import (
	"github.com/marketmind/marketmind/internal/auth"
	"github.com/marketmind/marketmind/internal/cart"
	"github.com/marketmind/marketmind/internal/repo"
)

var (
	productRepo repo.ProductRepository
	billRepo    repo.BillRepository
	carts       *cart.Manager
	session     *auth.SessionService
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetBillRepo(r repo.BillRepository) {
	billRepo = r
}

func SetCartManager(m *cart.Manager) {
	carts = m
}

func SetSessionService(s *auth.SessionService) {
	session = s
}
