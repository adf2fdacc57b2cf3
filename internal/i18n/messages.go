package i18n

func catalog() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			ErrKeyInvalidRequest:     "Invalid request",
			ErrKeyInvalidRequestBody: "Invalid request body",
			ErrKeyInternalError:      "An unexpected error occurred",
			ErrKeyUnauthorized:       "Unauthorized",
			ErrKeyNotFound:           "Not found",
			ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
			ErrKeyTimeout:            "The request took too long",
			ErrKeyInvalidToken:       "Invalid or expired token",
			ErrKeyTokenRequired:      "Authentication token is required",
			ErrKeySessionRequired:    "Cart session is required",
			ErrKeyInvalidItem:        "The item cannot be added to the cart",
			ErrKeyInvalidQuantity:    "quantity: must be an integer",
			ErrKeyEmptyCart:          "Your cart is empty",
			ErrKeyOrderFailed:        "We could not place your order, your cart has been kept",
			ErrKeyUnavailable:        "Service temporarily unavailable",
			SuccessKeyLoggedOut:      "Signed out, cart cleared",
		},
		"bn": {
			ErrKeyInvalidRequest:     "অবৈধ অনুরোধ",
			ErrKeyInvalidRequestBody: "অনুরোধের বডি অবৈধ",
			ErrKeyInternalError:      "একটি অপ্রত্যাশিত ত্রুটি ঘটেছে",
			ErrKeyUnauthorized:       "অননুমোদিত",
			ErrKeyNotFound:           "পাওয়া যায়নি",
			ErrKeyRateLimitExceeded:  "অনেক বেশি অনুরোধ, কিছুক্ষণ পরে আবার চেষ্টা করুন",
			ErrKeyTimeout:            "অনুরোধে অনেক সময় লেগেছে",
			ErrKeyInvalidToken:       "টোকেন অবৈধ বা মেয়াদোত্তীর্ণ",
			ErrKeyTokenRequired:      "প্রমাণীকরণ টোকেন প্রয়োজন",
			ErrKeySessionRequired:    "কার্ট সেশন প্রয়োজন",
			ErrKeyInvalidItem:        "আইটেমটি কার্টে যোগ করা যাবে না",
			ErrKeyInvalidQuantity:    "পরিমাণ অবশ্যই পূর্ণসংখ্যা হতে হবে",
			ErrKeyEmptyCart:          "আপনার কার্ট খালি",
			ErrKeyOrderFailed:        "অর্ডার দেওয়া যায়নি, আপনার কার্ট রাখা হয়েছে",
			ErrKeyUnavailable:        "সেবা সাময়িকভাবে অনুপলব্ধ",
			SuccessKeyLoggedOut:      "সাইন আউট হয়েছে, কার্ট খালি করা হয়েছে",
		},
	}
}
