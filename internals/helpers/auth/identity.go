package auth

// Identity adalah pengguna yang sedang bertindak pada sebuah request/operasi.
// Service menerima nilai ini secara eksplisit.
type Identity struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
