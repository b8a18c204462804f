package i18n

// Message keys. Grouped the way the storefront screens use them.
const (
	// Navigation
	KeyHome    Key = "home"
	KeyShop    Key = "shop"
	KeyAbout   Key = "about"
	KeyContact Key = "contact"
	KeyBlog    Key = "blog"
	KeyCart    Key = "cart"
	KeyOrders  Key = "orders"
	KeyLogin   Key = "login"
	KeyLogout  Key = "logout"
	KeySignup  Key = "signup"
	KeyAdmin   Key = "admin"

	// Common
	KeyLoading  Key = "loading"
	KeyError    Key = "error"
	KeySuccess  Key = "success"
	KeySearch   Key = "search"
	KeyFilter   Key = "filter"
	KeySort     Key = "sort"
	KeyPrice    Key = "price"
	KeyCategory Key = "category"
	KeyAll      Key = "all"

	// Product
	KeyAddToCart  Key = "addToCart"
	KeyQuantity   Key = "quantity"
	KeySize       Key = "size"
	KeyInStock    Key = "inStock"
	KeyOutOfStock Key = "outOfStock"

	// Cart
	KeyCartEmpty         Key = "cartEmpty"
	KeyCartTotal         Key = "cartTotal"
	KeyProceedToCheckout Key = "proceedToCheckout"
	KeyRemoveFromCart    Key = "removeFromCart"

	// Checkout
	KeyCheckout          Key = "checkout"
	KeyBillingAddress    Key = "billingAddress"
	KeyShippingAddress   Key = "shippingAddress"
	KeyPaymentMethod     Key = "paymentMethod"
	KeyOrderSummary      Key = "orderSummary"
	KeyPlaceOrder        Key = "placeOrder"
	KeyOrderConfirmation Key = "orderConfirmation"
	KeyOrderNumber       Key = "orderNumber"

	// Forms
	KeyFirstName  Key = "firstName"
	KeyLastName   Key = "lastName"
	KeyEmail      Key = "email"
	KeyPhone      Key = "phone"
	KeyAddress    Key = "address"
	KeyCity       Key = "city"
	KeyPostalCode Key = "postalCode"
	KeyCountry    Key = "country"
	KeyMessage    Key = "message"
	KeySubject    Key = "subject"

	// Messages
	KeyItemAddedToCart     Key = "itemAddedToCart"
	KeyItemRemovedFromCart Key = "itemRemovedFromCart"
	KeyOrderPlaced         Key = "orderPlaced"
	KeyLoginRequired       Key = "loginRequired"
	KeyInvalidCredentials  Key = "invalidCredentials"
	KeyAccountCreated      Key = "accountCreated"
	KeyNotEnoughStock      Key = "notEnoughStock"
	KeyMessageSent         Key = "messageSent"
)

var messages = map[Language]map[Key]string{
	LanguageEN: {
		KeyHome:    "Home",
		KeyShop:    "Shop",
		KeyAbout:   "About",
		KeyContact: "Contact",
		KeyBlog:    "Blog",
		KeyCart:    "Cart",
		KeyOrders:  "Orders",
		KeyLogin:   "Login",
		KeyLogout:  "Logout",
		KeySignup:  "Sign Up",
		KeyAdmin:   "Admin",

		KeyLoading:  "Loading...",
		KeyError:    "Error",
		KeySuccess:  "Success",
		KeySearch:   "Search",
		KeyFilter:   "Filter",
		KeySort:     "Sort",
		KeyPrice:    "Price",
		KeyCategory: "Category",
		KeyAll:      "All",

		KeyAddToCart:  "Add to Cart",
		KeyQuantity:   "Quantity",
		KeySize:       "Size",
		KeyInStock:    "In Stock",
		KeyOutOfStock: "Out of Stock",

		KeyCartEmpty:         "Your cart is empty",
		KeyCartTotal:         "Total",
		KeyProceedToCheckout: "Proceed to Checkout",
		KeyRemoveFromCart:    "Remove from Cart",

		KeyCheckout:          "Checkout",
		KeyBillingAddress:    "Billing Address",
		KeyShippingAddress:   "Shipping Address",
		KeyPaymentMethod:     "Payment Method",
		KeyOrderSummary:      "Order Summary",
		KeyPlaceOrder:        "Place Order",
		KeyOrderConfirmation: "Order Confirmation",
		KeyOrderNumber:       "Order Number",

		KeyFirstName:  "First Name",
		KeyLastName:   "Last Name",
		KeyEmail:      "Email",
		KeyPhone:      "Phone",
		KeyAddress:    "Address",
		KeyCity:       "City",
		KeyPostalCode: "Postal Code",
		KeyCountry:    "Country",
		KeyMessage:    "Message",
		KeySubject:    "Subject",

		KeyItemAddedToCart:     "Item added to cart",
		KeyItemRemovedFromCart: "Item removed from cart",
		KeyOrderPlaced:         "Order placed successfully",
		KeyLoginRequired:       "Please login to continue",
		KeyInvalidCredentials:  "Invalid credentials",
		KeyAccountCreated:      "Account created successfully",
		KeyNotEnoughStock:      "Not enough stock",
		KeyMessageSent:         "Message sent successfully",
	},
	LanguageLT: {
		KeyHome:    "Pradžia",
		KeyShop:    "Parduotuvė",
		KeyAbout:   "Apie mus",
		KeyContact: "Kontaktai",
		KeyBlog:    "Tinklaraštis",
		KeyCart:    "Krepšelis",
		KeyOrders:  "Užsakymai",
		KeyLogin:   "Prisijungti",
		KeyLogout:  "Atsijungti",
		KeySignup:  "Registruotis",
		KeyAdmin:   "Administracija",

		KeyLoading:  "Kraunama...",
		KeyError:    "Klaida",
		KeySuccess:  "Sėkmė",
		KeySearch:   "Ieškoti",
		KeyFilter:   "Filtruoti",
		KeySort:     "Rūšiuoti",
		KeyPrice:    "Kaina",
		KeyCategory: "Kategorija",
		KeyAll:      "Visi",

		KeyAddToCart:  "Pridėti į krepšelį",
		KeyQuantity:   "Kiekis",
		KeySize:       "Dydis",
		KeyInStock:    "Yra sandėlyje",
		KeyOutOfStock: "Nėra sandėlyje",

		KeyCartEmpty:         "Jūsų krepšelis tuščias",
		KeyCartTotal:         "Iš viso",
		KeyProceedToCheckout: "Pereiti prie apmokėjimo",
		KeyRemoveFromCart:    "Pašalinti iš krepšelio",

		KeyCheckout:          "Apmokėjimas",
		KeyBillingAddress:    "Sąskaitos adresas",
		KeyShippingAddress:   "Pristatymo adresas",
		KeyPaymentMethod:     "Mokėjimo būdas",
		KeyOrderSummary:      "Užsakymo santrauka",
		KeyPlaceOrder:        "Pateikti užsakymą",
		KeyOrderConfirmation: "Užsakymo patvirtinimas",
		KeyOrderNumber:       "Užsakymo numeris",

		KeyFirstName:  "Vardas",
		KeyLastName:   "Pavardė",
		KeyEmail:      "El. paštas",
		KeyPhone:      "Telefonas",
		KeyAddress:    "Adresas",
		KeyCity:       "Miestas",
		KeyPostalCode: "Pašto kodas",
		KeyCountry:    "Šalis",
		KeyMessage:    "Žinutė",
		KeySubject:    "Tema",

		KeyItemAddedToCart:     "Prekė pridėta į krepšelį",
		KeyItemRemovedFromCart: "Prekė pašalinta iš krepšelio",
		KeyOrderPlaced:         "Užsakymas sėkmingai pateiktas",
		KeyLoginRequired:       "Prašome prisijungti",
		KeyInvalidCredentials:  "Neteisingi prisijungimo duomenys",
		KeyAccountCreated:      "Paskyra sėkmingai sukurta",
		KeyNotEnoughStock:      "Nepakanka atsargų",
		KeyMessageSent:         "Žinutė sėkmingai išsiųsta",
	},
}
