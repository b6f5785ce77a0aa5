package constant

const (
	CollectionHotels       = "hotels"
	CollectionCustomers    = "customers"
	CollectionReservations = "reservations"
)

const (
	StorageDriverFile     = "file"
	StorageDriverMemory   = "memory"
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
	StorageDriverS3       = "s3"
)

const (
	FileExtensionJSON = ".json"
	ContentTypeJSON   = "application/json"
	JSONIndent        = "    "
)

const (
	EventReservationCreated   = "reservation.created"
	EventReservationCancelled = "reservation.cancelled"
)

const (
	OtelHandlerScopeName    = "handler"
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelStoreScopeName      = "store"
	OtelEventScopeName      = "event"

	OtelCollectionAttributeKey = "collection"
	OtelEntityIDAttributeKey   = "entity.id"
	OtelQueryAttributeKey      = "query"
	OtelS3ScopeName            = "s3"
)

const (
	CommandHotel       = "hotel"
	CommandCustomer    = "customer"
	CommandReservation = "reservation"
	CommandEvents      = "events"
)

const (
	ResponseMessageCreated   = "created"
	ResponseMessageUpdated   = "updated"
	ResponseMessageDeleted   = "deleted"
	ResponseMessageCancelled = "cancelled"
)

const (
	Empty = ""
)
