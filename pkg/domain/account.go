package domain

import "github.com/shopspring/decimal"

// Profile account owner details.
type Profile struct {
	TrackingID   int64         `json:"tracking_id"`
	FirstName    string        `json:"first_name"`
	LastName     string        `json:"last_name"`
	NationalCode string        `json:"national_code"`
	FaceImage    string        `json:"face_image"`
	Birthday     string        `json:"birthday"`
	Address      Address       `json:"address"`
	PhoneNumber  PhoneNumber   `json:"phone_number"`
	MobileNumber string        `json:"mobile_number"`
	Verification string        `json:"verification"`
	Email        string        `json:"email"`
	InviteCode   string        `json:"invite_code"`
	Avatar       any           `json:"avatar"`
	Commission   float64       `json:"commission"`
	Settings     Settings      `json:"settings"`
	Status       ProfileStatus `json:"status"`
	KYCInfo      KYCInfo       `json:"kyc_info"`
	Meta         ProfileMeta   `json:"meta"`
}

// Address postal address; every part is optional.
type Address struct {
	Country     string `json:"country,omitempty"`
	City        string `json:"city,omitempty"`
	Location    string `json:"location,omitempty"`
	Province    string `json:"province,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	HouseNumber string `json:"house_number,omitempty"`
}

// PhoneNumber landline number.
type PhoneNumber struct {
	AreaCode   string `json:"area_code"`
	MainNumber string `json:"main_number"`
}

// Settings user interface and permission settings.
type Settings struct {
	Theme              string        `json:"theme"`
	Mode               string        `json:"mode"`
	OrderSubmitConfirm bool          `json:"order_submit_confirm"`
	OrderDeleteConfirm bool          `json:"order_delete_confirm"`
	DefaultMode        bool          `json:"default_mode"`
	FavoriteMarkets    []string      `json:"favorite_markets"`
	ChooseTradingType  bool          `json:"choose_trading_type"`
	CoinDeposit        bool          `json:"coin_deposit"`
	CoinWithdraw       bool          `json:"coin_withdraw"`
	MoneyDeposit       bool          `json:"money_deposit"`
	MoneyWithdraw      bool          `json:"money_withdraw"`
	Logins             bool          `json:"logins"`
	Trade              bool          `json:"trade"`
	APIKeyExpiration   bool          `json:"api_key_expiration"`
	Notification       Notifications `json:"notification"`
}

// Notifications per-channel notification settings.
type Notifications struct {
	Email        NotificationChannel `json:"email"`
	Announcement NotificationChannel `json:"announcement"`
	Push         NotificationChannel `json:"push"`
}

// NotificationChannel a channel and the actions it reports.
type NotificationChannel struct {
	IsEnable bool                `json:"is_enable"`
	Actions  NotificationActions `json:"actions"`
	Label    string              `json:"label"`
}

// NotificationActions toggles for each notified action.
type NotificationActions struct {
	CoinDeposit      NotificationToggle `json:"coin_deposit"`
	CoinWithdraw     NotificationToggle `json:"coin_withdraw"`
	MoneyDeposit     NotificationToggle `json:"money_deposit"`
	MoneyWithdraw    NotificationToggle `json:"money_withdraw"`
	Logins           NotificationToggle `json:"logins"`
	APIKeyExpiration NotificationToggle `json:"api_key_expiration"`
	ManualDeposit    NotificationToggle `json:"manual_deposit"`
}

// NotificationToggle single notification switch.
type NotificationToggle struct {
	IsEnable bool   `json:"is_enable"`
	Label    string `json:"label"`
}

// ProfileStatus verification state of each profile field.
type ProfileStatus struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	NationalCode      string `json:"national_code"`
	NationalCardImage string `json:"national_card_image"`
	FaceImage         string `json:"face_image"`
	Birthday          string `json:"birthday"`
	Address           string `json:"address"`
	PhoneNumber       string `json:"phone_number"`
	MobileNumber      string `json:"mobile_number"`
	Email             string `json:"email"`
}

// KYCInfo know-your-customer progress.
type KYCInfo struct {
	Details KYCDetails `json:"details"`
	Level   int        `json:"level"`
}

// KYCDetails completed KYC steps.
type KYCDetails struct {
	MobileActivation bool `json:"mobile_activation"`
	PersonalInfo     bool `json:"personal_info"`
	FinancialInfo    bool `json:"financial_info"`
	PhoneNumber      bool `json:"phone_number"`
	NationalCard     bool `json:"national_card"`
	FaceRecognition  bool `json:"face_recognition"`
	AdminApproval    bool `json:"admin_approval"`
}

// ProfileMeta account restrictions.
type ProfileMeta struct {
	DisabledFeatures []string `json:"disabled_features"`
}

// Balance holdings of a single asset.
type Balance struct {
	Asset  string       `json:"asset"`
	FaName string       `json:"faName"`
	Fiat   bool         `json:"fiat"`
	Value  NumberString `json:"value"`
	Locked NumberString `json:"locked"`
}

// Available returns value minus locked. A null locked amount counts as zero.
func (b Balance) Available() (decimal.Decimal, error) {
	value, err := b.Value.Decimal()
	if err != nil {
		return decimal.Zero, err
	}
	if b.Locked.IsNull() {
		return value, nil
	}
	locked, err := b.Locked.Decimal()
	if err != nil {
		return decimal.Zero, err
	}
	return value.Sub(locked), nil
}

// FeeLevel fee schedule of a market.
type FeeLevel struct {
	Levels        map[string]FeeTier `json:"levels"`
	RecentDays    int                `json:"recent_days"`
	RecentDaysSum float64            `json:"recent_days_sum"`
	MakerFee      NumberString       `json:"maker_fee"`
	TakerFee      NumberString       `json:"taker_fee"`
	IsFixed       bool               `json:"is_fixed"`
}

// FeeTier maker and taker fee of one volume tier.
type FeeTier struct {
	MakerFee NumberString `json:"maker_fee"`
	TakerFee NumberString `json:"taker_fee"`
	Name     string       `json:"name"`
}

// BankingCard registered debit card.
type BankingCard struct {
	ID         int64    `json:"id"`
	CardNumber string   `json:"card_number"`
	Owners     []string `json:"owners"`
	Status     string   `json:"status"`
	IsDefault  int      `json:"is_default"`
}

// BankAccount registered bank account.
type BankAccount struct {
	ID          int64       `json:"id"`
	IBAN        string      `json:"iban"`
	Owners      []string    `json:"owners"`
	BankName    string      `json:"bank_name"`
	Status      string      `json:"status"`
	IsDefault   int         `json:"is_default"`
	BankDetails BankDetails `json:"bank_details"`
}

// BankDetails bank identifier.
type BankDetails struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}
