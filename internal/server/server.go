package server

// Данный сервер просто объединяет специфичные HTTP сервера, отвечающие за обработку конкретных сущностей.
// Сейчас это только партии (GameServer).
type Server struct {
	GameServer
}

func NewServer(
	gameServer GameServer,
) Server {
	return Server{
		GameServer: gameServer,
	}
}
