package memory

import "github.com/legastork/futsal-fantasy/internal/domain/player"

// SeedPlayers is the starting player pool used by the memory driver and tests.
func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "1", Name: "Il Capitano", Club: "Birra Real", Role: player.RoleOutfield, Price: 45, Status: player.StatusAvailable},
		{ID: "2", Name: "Bomber di Razza", Club: "NeroVerdi", Role: player.RoleOutfield, Price: 38, Status: player.StatusAvailable},
		{ID: "3", Name: "Saracinesca", Club: "BlueStars", Role: player.RoleGoalkeeper, Price: 25, Status: player.StatusAvailable},
		{ID: "4", Name: "Il Geometra", Club: "BiancoNeri", Role: player.RoleOutfield, Price: 22, Status: player.StatusAvailable},
		{ID: "5", Name: "Puntazza d'Oro", Club: "Azzurri", Role: player.RoleOutfield, Price: 28, Status: player.StatusAvailable},
		{ID: "6", Name: "Gatto delle Nevi", Club: "NeroVerdi", Role: player.RoleGoalkeeper, Price: 18, Status: player.StatusAvailable},
		{ID: "7", Name: "Zaino in Spalla", Club: "Birra Real", Role: player.RoleOutfield, Price: 12, Status: player.StatusAvailable},
		{ID: "8", Name: "Polmone Infinito", Club: "BlueStars", Role: player.RoleOutfield, Price: 15, Status: player.StatusAvailable},
		{ID: "9", Name: "L'Eterno Secondo", Club: "BiancoNeri", Role: player.RoleOutfield, Price: 10, Status: player.StatusAvailable},
		{ID: "10", Name: "Dribbling Folle", Club: "Azzurri", Role: player.RoleOutfield, Price: 20, Status: player.StatusAvailable},
	}
}
