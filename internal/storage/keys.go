package storage

// Fixed keys of the persisted collections.
const (
	KeyUsers    = "dl_users_v1"
	KeyProducts = "dl_products_v1"
	KeySession  = "dl_session_v1"
	KeyCart     = "dl_cart_v1"
	KeyOrders   = "dl_orders_v1"
)
