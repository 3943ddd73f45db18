/*
Package clinicsdk is a Go client for the clinic appointment-booking API.

# Client vs Session

Open endpoints (registration, logins, booking, health) live on Client.
Endpoints that require a bearer token live on Session, which a Client
creates from a login or from a token obtained elsewhere:

	client := clinicsdk.NewClient("http://localhost:8080")

	// Register and log in as a patient
	_, err := client.RegisterPatient(ctx, clinicsdk.RegisterPatientRequest{
		FirstName: "Ann", LastName: "Lee", Email: "ann@x.com", Password: "secret1",
	})
	login, err := client.LoginPatient(ctx, "ann@x.com", "secret1")

	// Doctors get a session for the protected endpoints
	session, err := client.AuthenticateDoctor(ctx, "grey@clinic.test", "secret")
	appts, err := session.DoctorAppointments(ctx, session.DoctorID)

# Errors

Any non-2xx response becomes an *APIError carrying the status code and the
server's message:

	_, err := client.LoginPatient(ctx, "nobody@x.com", "pw")
	var apiErr *clinicsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		fmt.Println(apiErr.Message) // "Invalid email."
	}

Sessions are safe for concurrent use; they hold an immutable token.
*/
package clinicsdk
